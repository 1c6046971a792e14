package handler

import (
	"net/http"

	"github.com/wmsdemo/wms/internal/session"
)

const LoginPath = "/login"

// Guard protects a subtree of the router. Anonymous requests are
// redirected to the login view, authenticated requests continue
// with the session store in their context.
type Guard struct {
	Session *session.Store
	Flash   Flash
}

func (g Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// checked on every request, a logout takes effect immediately
		if !g.Session.IsAuthenticated() {
			if r.Method == http.MethodGet {
				g.Flash.RememberTarget(w, r, r.URL.RequestURI())
			}
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.WithStore(r.Context(), g.Session)))
	})
}
