package handler

import (
	"net/http"

	"github.com/wmsdemo/wms/pkg/model"
)

type TaskAction int

const (
	TaskConfirm TaskAction = iota
	TaskStart
	TaskCancel
)

type RobotTasksGet struct {
	Base
}

func (s *RobotTasksGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	WriteJSON(w, http.StatusOK, &RobotTasksResponse{Tasks: s.Robots.Tasks()})
}

type RobotTasksResponse struct {
	Tasks []model.RobotTask `json:"tasks"`
}

// RobotTaskAction applies a user intent from the task list to a task
type RobotTaskAction struct {
	Base
	Action TaskAction
}

func (s *RobotTaskAction) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := PathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var task *model.RobotTask
	switch s.Action {
	case TaskConfirm:
		task, err = s.Robots.ConfirmTask(id)
	case TaskStart:
		task, err = s.Robots.StartTask(id)
	case TaskCancel:
		err = s.Robots.CancelTask(id)
	}
	if err != nil {
		WriteControllerError(w, err)
		return
	}

	if task == nil {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`)) // nolint: errcheck
		return
	}
	WriteJSON(w, http.StatusOK, task)
}
