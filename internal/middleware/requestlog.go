package middleware

import (
	"net/http"

	"github.com/brunori/hallpass/internal/logutil"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestLog tags every request with a fresh request id, binds a scoped
// logger into the request context and echoes the id back to the client.
func RequestLog(base zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := uuid.NewString()
		log := base.With().
			Str("req.id", rid).
			Str("req.method", r.Method).
			Str("req.path", r.URL.Path).
			Logger()
		w.Header().Set("X-Request-Id", rid)
		log.Debug().Msg("Handling request")
		next.ServeHTTP(w, r.WithContext(logutil.WithLogger(r.Context(), log)))
	})
}
