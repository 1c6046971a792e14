package handler

import (
	"net/http"

	"github.com/wmsdemo/wms/pkg/model"
)

type SessionGet struct {
	Base
}

func (s *SessionGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	WriteJSON(w, http.StatusOK, &SessionResponse{
		Ok:      true,
		Session: s.Session.Session(),
		State:   s.Session.State().String(),
	})
}

type SessionResponse struct {
	Ok      bool          `json:"ok"`
	Session model.Session `json:"userCtx"`
	State   string        `json:"state"`
}
