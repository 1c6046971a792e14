package handler

import (
	"net/http"

	"github.com/wmsdemo/wms/internal/session"
)

type LogoutPost struct{}

func (s *LogoutPost) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	store, err := session.FromContext(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	store.Logout()

	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}
