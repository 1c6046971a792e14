package handler

import (
	"net/http"
)

type SessionDelete struct {
	Base
}

func (s *SessionDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	s.Session.Logout()

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok":true}`)) // nolint: errcheck
}
