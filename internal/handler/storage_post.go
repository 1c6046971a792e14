package handler

import (
	"net/http"

	"github.com/wmsdemo/wms/pkg/model"
)

type StoragePost struct {
	Base
}

func (s *StoragePost) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var in model.StorageLocation
	err := DecodeForm(r, &in, "capacity")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	location, err := s.Locations.Add(in)
	if err != nil {
		WriteControllerError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, location)
}
