package controllers

import (
	"html/template"
	"log"
	"net/http"

	"boardfront/app/apiclient"
	"boardfront/app/models"
	"boardfront/app/session"
	"boardfront/app/views"
)

// AuthController serves the combined login/registration view.
type AuthController struct {
	api       *apiclient.Client
	sessions  *session.Store
	templates map[string]*template.Template
}

// NewAuthController creates an AuthController. sessions may be nil; then
// a successful login just redirects without establishing a session.
func NewAuthController(api *apiclient.Client, sessions *session.Store) *AuthController {
	return &AuthController{
		api:       api,
		sessions:  sessions,
		templates: views.Load(),
	}
}

// authPage is the data the auth template renders over. Password is never
// echoed back; name and email survive a failed submit.
type authPage struct {
	Register bool
	Name     string
	Email    string
	Error    string
}

// Show handles GET /auth. ?mode=register selects the registration form.
func (ac *AuthController) Show(w http.ResponseWriter, r *http.Request) {
	ac.render(w, authPage{Register: r.URL.Query().Get("mode") == "register"})
}

// Submit handles POST /auth. Validation runs before any network call, in
// order: blank fields, email shape, password length.
func (ac *AuthController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	register := r.FormValue("mode") == "register"
	mode := models.ModeLogin
	if register {
		mode = models.ModeRegister
	}
	creds := models.Credentials{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	page := authPage{Register: register, Name: creds.Name, Email: creds.Email}

	if err := creds.Validate(mode); err != nil {
		page.Error = err.Error()
		ac.render(w, page)
		return
	}

	var res *apiclient.AuthResult
	var err error
	if register {
		res, err = ac.api.Register(r.Context(), creds)
	} else {
		res, err = ac.api.Login(r.Context(), creds)
	}
	if err != nil {
		page.Error = apiclient.Message(err)
		ac.render(w, page)
		return
	}

	if ac.sessions != nil {
		name := res.Name
		if name == "" {
			name = creds.Name
		}
		sess, err := ac.sessions.Create(res.Token, name, creds.Email)
		if err != nil {
			page.Error = apiclient.FallbackMessage
			ac.render(w, page)
			return
		}
		http.SetCookie(w, ac.sessions.Cookie(sess))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles GET /logout.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if ac.sessions != nil {
		if sess, ok := ac.sessions.FromRequest(r); ok {
			_ = ac.sessions.Delete(sess.ID)
		}
	}
	http.SetCookie(w, session.ClearCookie())
	http.Redirect(w, r, "/auth", http.StatusSeeOther)
}

func (ac *AuthController) render(w http.ResponseWriter, page authPage) {
	if err := ac.templates["auth"].ExecuteTemplate(w, "layout", page); err != nil {
		log.Printf("render auth: %v", err)
	}
}
