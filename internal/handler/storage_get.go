package handler

import (
	"net/http"

	"github.com/wmsdemo/wms/pkg/model"
)

type StorageGet struct {
	Base
}

func (s *StorageGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	locations, err := s.Locations.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		WriteControllerError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, &StorageResponse{Locations: locations})
}

type StorageResponse struct {
	Locations []model.StorageLocation `json:"locations"`
}
