package handler

import (
	"net/http"
)

const Version = "0.1.0"

type Info struct {
	InstanceID string
}

func (s *Info) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	WriteJSON(w, http.StatusOK, &InfoResponse{
		Wms:     "Welcome",
		Version: Version,
		UUID:    s.InstanceID,
		Features: []string{
			"users",
			"storage",
			"routes",
			"robots",
			"search",
		},
	})
}

type InfoResponse struct {
	Wms      string   `json:"wms"`
	Version  string   `json:"version"`
	UUID     string   `json:"uuid"`
	Features []string `json:"features"`
}

// Home sends authenticated visitors to the user management
type Home struct{}

func (s *Home) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, homePath, http.StatusFound)
}
