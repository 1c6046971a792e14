package handler

import (
	"net/http"
)

type RoutesGet struct {
	Base
}

func (s *RoutesGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	WriteJSON(w, http.StatusOK, s.Routes.Report())
}
