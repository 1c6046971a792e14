package handler

import (
	"net/http"
)

type StorageDelete struct {
	Base
}

func (s *StorageDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := PathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = s.Locations.Delete(id)
	if err != nil {
		WriteControllerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok":true}`)) // nolint: errcheck
}
