package web

import (
	"html/template"
	"net/http"

	"github.com/brunori/hallpass/internal/logutil"
)

var pages = template.Must(template.New("pages").Parse(`
{{define "login"}}<html><head><title>Login page</title></head><body>
{{if .Message}}<h3>{{.Message}}</h3><br>{{end}}
<form method="post" action="/login">
Username: <input type="text" name="username"><br>
Password: <input type="password" name="password"><br>
<input type="submit" value="Login"></form>
</body></html>
{{end}}
{{define "home"}}<html><head><title>Login page</title></head><body>
<h3>Welcome {{.Name}}! You are logged in!</h3>
<form method="get" action="/logout">
<input type="submit" value="Logout">
</form>
</body></html>
{{end}}`))

func renderLogin(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := pages.ExecuteTemplate(w, "login", struct{ Message string }{Message: message})
	if err != nil {
		log := logutil.GetOrDefault(r.Context())
		log.Error().Err(err).Msg("Unable to render login page")
	}
}

func renderHome(w http.ResponseWriter, r *http.Request, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := pages.ExecuteTemplate(w, "home", struct{ Name string }{Name: name})
	if err != nil {
		log := logutil.GetOrDefault(r.Context())
		log.Error().Err(err).Msg("Unable to render home page")
	}
}
