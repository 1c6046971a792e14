package handler

import (
	"net/http"

	"github.com/wmsdemo/wms/pkg/model"
)

type StoragePut struct {
	Base
}

func (s *StoragePut) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := PathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var in model.StorageLocation
	err = DecodeForm(r, &in, "capacity", "occupied", "status")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	locations, err := s.Locations.Update(id, in)
	if err != nil {
		WriteControllerError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, &StorageResponse{Locations: locations})
}
