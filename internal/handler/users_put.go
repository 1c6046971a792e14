package handler

import (
	"net/http"

	"github.com/wmsdemo/wms/pkg/model"
)

type UsersPut struct {
	Base
}

func (s *UsersPut) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := PathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var in model.User
	err = DecodeForm(r, &in)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	users, err := s.Users.Update(id, in)
	if err != nil {
		WriteControllerError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, &UsersResponse{Users: users})
}
