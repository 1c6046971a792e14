package handler

import (
	"net/http"
)

type SessionPost struct {
	Base
}

type SessionPostRequest struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

func (s *SessionPost) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req SessionPostRequest
	err := DecodeForm(r, &req)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !s.Session.Login(req.Username, req.Password) {
		WriteError(w, http.StatusUnauthorized, invalidCredentialMsg)
		return
	}

	WriteJSON(w, http.StatusOK, &SessionResponse{
		Ok:      true,
		Session: s.Session.Session(),
		State:   s.Session.State().String(),
	})
}
