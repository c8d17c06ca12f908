package web

import (
	"net/http"
)

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "register", h.view(w, r, nil))
}

// Register handles both /register/ and /signup/; the two routes are
// deliberately identical.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password1")
	confirm := r.FormValue("password2")
	if password != confirm {
		setFlash(w, "error", "Passwords don't match.")
		redirectBack(w, r)
		return
	}

	_, err := h.users.Register(r.Context(), r.FormValue("username"), r.FormValue("email"), password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	setFlash(w, "success", "Registration successful. You can now log in.")
	http.Redirect(w, r, "/login/", http.StatusSeeOther)
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "login", h.view(w, r, nil))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	_, token, err := h.users.Authenticate(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.Auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cfg.Auth.TokenTTLHrs * 3600,
		HttpOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.Auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
