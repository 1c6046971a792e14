package handler

import (
	"net/http"

	"github.com/wmsdemo/wms/pkg/model"
)

type UsersGet struct {
	Base
}

func (s *UsersGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	users, err := s.Users.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		WriteControllerError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, &UsersResponse{Users: users})
}

type UsersResponse struct {
	Users []model.User `json:"users"`
}
