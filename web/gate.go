package web

import (
	"context"
	"net/http"

	"github.com/brunori/hallpass/session"
)

type (
	// Realm decides, per request, whether the session cookie buys entry.
	// Require and Try are the two enforcement modes: Require redirects
	// anonymous visitors to the login page before the handler ever runs,
	// Try always runs the handler and lets it branch on the verdict.
	Realm struct {
		sessions       *session.Validator
		keyfn          session.KeyFn
		cookieName     string
		insecureCookie bool
	}

	ctxKey byte
)

const (
	DefaultCookieName = "sid-example"

	verdictKey = ctxKey(1)
)

func NewRealm(sessions *session.Validator, keyfn session.KeyFn, cookieName string, allowHTTPCookie bool) *Realm {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Realm{
		sessions:       sessions,
		keyfn:          keyfn,
		cookieName:     cookieName,
		insecureCookie: allowHTTPCookie,
	}
}

func (g *Realm) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verdict := g.check(r)
		if !verdict.Valid {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(withVerdict(r.Context(), verdict)))
	})
}

func (g *Realm) Try(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verdict := g.check(r)
		next.ServeHTTP(w, r.WithContext(withVerdict(r.Context(), verdict)))
	})
}

func (g *Realm) check(r *http.Request) session.Verdict {
	cookie, err := r.Cookie(g.cookieName)
	if err != nil {
		// no cookie is not an error, just an anonymous visitor
		return session.Verdict{}
	}
	return g.sessions.Validate(r.Context(), cookie.Value)
}

// Issue seals the claim and hands the resulting token to the client as
// the session cookie.
func (g *Realm) Issue(ctx context.Context, w http.ResponseWriter, claim session.Claim) error {
	var key session.Key
	err := g.keyfn(ctx, &key)
	if err != nil {
		return err
	}
	token, err := session.Seal(claim, &key)
	key.Zero()
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     g.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   !g.insecureCookie,
	})
	return nil
}

// Drop tells the client to forget the session cookie. The token itself
// stays valid until the sealing key changes, see the package docs of
// session.
func (g *Realm) Drop(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     g.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Secure:   !g.insecureCookie,
	})
}

func withVerdict(ctx context.Context, v session.Verdict) context.Context {
	return context.WithValue(ctx, verdictKey, v)
}

// VerdictFrom returns the verdict the Realm bound to this request, or
// the zero (invalid) verdict for requests that never went through it.
func VerdictFrom(ctx context.Context) session.Verdict {
	v, _ := ctx.Value(verdictKey).(session.Verdict)
	return v
}
