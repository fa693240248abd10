package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brunori/hallpass/internal/logutil"
	"github.com/brunori/hallpass/session"
	"github.com/brunori/hallpass/shelf"
	"github.com/julienschmidt/httprouter"
)

const (
	msgMissingCredentials = "Missing username or password"
	// unknown user and wrong password share one message so the login
	// form cannot be used to probe which logins exist
	msgInvalidCredentials = "Invalid username or password"
)

type (
	handlers struct {
		store *shelf.Shelf
		realm *Realm
	}
)

// AsHandler builds the whole user-facing surface on top of the given
// shelf and realm.
func AsHandler(store *shelf.Shelf, realm *Realm) http.Handler {
	h := handlers{store: store, realm: realm}
	router := httprouter.New()
	router.Handler("GET", "/", realm.Require(http.HandlerFunc(h.home)))
	router.Handler("GET", "/login", realm.Try(http.HandlerFunc(h.loginForm)))
	router.Handler("POST", "/login", realm.Try(http.HandlerFunc(h.login)))
	router.Handler("GET", "/logout", realm.Require(http.HandlerFunc(h.logout)))
	router.Handler("GET", "/todo", realm.Require(http.HandlerFunc(h.firstTodo)))
	return router
}

func (h handlers) home(w http.ResponseWriter, r *http.Request) {
	verdict := VerdictFrom(r.Context())
	renderHome(w, r, verdict.Identity.Login)
}

func (h handlers) loginForm(w http.ResponseWriter, r *http.Request) {
	if VerdictFrom(r.Context()).Valid {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	renderLogin(w, r, "")
}

func (h handlers) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logutil.GetOrDefault(ctx)
	err := r.ParseForm()
	if err != nil {
		renderLogin(w, r, msgMissingCredentials)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		renderLogin(w, r, msgMissingCredentials)
		return
	}
	user, err := h.store.FindUserByLogin(ctx, username)
	var notFound shelf.UserNotFound
	switch {
	case errors.As(err, &notFound):
		renderLogin(w, r, msgInvalidCredentials)
		return
	case err != nil:
		log.Error().Err(err).Msg("Unexpected error while resolving login")
		http.Error(w, "unable to process login right now", http.StatusInternalServerError)
		return
	}
	if !session.VerifyPassword(password, user.Password) {
		renderLogin(w, r, msgInvalidCredentials)
		return
	}
	err = h.realm.Issue(ctx, w, session.Claim{ID: user.ID})
	if err != nil {
		log.Error().Err(err).Msg("Unable to seal session token")
		http.Error(w, "unable to process login right now", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h handlers) logout(w http.ResponseWriter, r *http.Request) {
	h.realm.Drop(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h handlers) firstTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	todo, err := h.store.FirstTodo(ctx)
	var empty shelf.TodoNotFound
	switch {
	case errors.As(err, &empty):
		http.Error(w, "no todos yet", http.StatusNotFound)
		return
	case err != nil:
		log := logutil.GetOrDefault(ctx)
		log.Error().Err(err).Msg("Unable to fetch todo")
		http.Error(w, "unable to fetch todo, server is mis-behaving", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(todo)
}
