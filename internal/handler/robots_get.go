package handler

import (
	"net/http"

	"github.com/wmsdemo/wms/pkg/model"
)

type RobotsGet struct {
	Base
}

func (s *RobotsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	robots := s.Robots.Robots()
	resp := &RobotsResponse{
		Map:    s.Robots.Map(),
		Robots: robots,
		Tasks:  s.Robots.Tasks(),
	}
	if len(robots) > 0 {
		resp.Selected = &robots[0]
	}

	WriteJSON(w, http.StatusOK, resp)
}

type RobotsResponse struct {
	Map      model.WarehouseMap `json:"map"`
	Robots   []model.Robot      `json:"robots"`
	Tasks    []model.RobotTask  `json:"tasks"`
	Selected *model.Robot       `json:"selected,omitempty"`
}

type RobotGet struct {
	Base
}

func (s *RobotGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := PathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	robot, err := s.Robots.Robot(id)
	if err != nil {
		WriteControllerError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, robot)
}
