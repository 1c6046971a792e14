package handler

import (
	"net/http"

	"github.com/wmsdemo/wms/pkg/model"
)

type UsersPost struct {
	Base
}

func (s *UsersPost) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var in model.User
	err := DecodeForm(r, &in)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.Users.Add(in)
	if err != nil {
		WriteControllerError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}
