package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrTaskNotPending = errors.New("task is not pending")

type RobotStatus string

const (
	RobotActive      RobotStatus = "Active"
	RobotCharging    RobotStatus = "Charging"
	RobotMaintenance RobotStatus = "Maintenance"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

type Location struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zone string  `json:"zone"`
}

type RobotTask struct {
	ID        int        `json:"id"`
	RobotID   int        `json:"robotId"`
	Status    TaskStatus `json:"status"`
	Type      string     `json:"type"`
	Location  Location   `json:"location"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Battery   int        `json:"battery"`
	TaskLoad  int        `json:"taskLoad"`
}

func (t RobotTask) String() string {
	return fmt.Sprintf("<RobotTask id=%d robot=%d status=%q>", t.ID, t.RobotID, t.Status)
}

// Start moves a pending task into progress. Confirming a task
// has the same effect.
func (t *RobotTask) Start() error {
	if t.Status != TaskPending {
		return fmt.Errorf("can't start task %d in status %q: %w", t.ID, t.Status, ErrTaskNotPending)
	}
	t.Status = TaskInProgress
	return nil
}

// Cancelable reports if the task may be dropped from the task list
func (t RobotTask) Cancelable() bool {
	return t.Status == TaskPending
}

type Robot struct {
	ID              int         `json:"id"`
	Name            string      `json:"name"`
	Status          RobotStatus `json:"status"`
	Battery         int         `json:"battery"`
	CurrentTask     *RobotTask  `json:"currentTask,omitempty"`
	Location        Location    `json:"location"`
	LastMaintenance time.Time   `json:"lastMaintenance"`
	TotalTasks      int         `json:"totalTasks"`
}

func (r Robot) String() string {
	return fmt.Sprintf("<Robot id=%d name=%q status=%q>", r.ID, r.Name, r.Status)
}

// Marker is a robot placed on the warehouse map, positions are [y, x].
type Marker struct {
	RobotID  int         `json:"robotId"`
	Name     string      `json:"name"`
	Status   RobotStatus `json:"status"`
	Position [2]float64  `json:"position"`
	Task     *RobotTask  `json:"task,omitempty"`
}

type WarehouseMap struct {
	Width   float64    `json:"width"`
	Height  float64    `json:"height"`
	Center  [2]float64 `json:"center"`
	Markers []Marker   `json:"markers"`
}

func NewWarehouseMap(width, height float64, robots []Robot) WarehouseMap {
	m := WarehouseMap{
		Width:   width,
		Height:  height,
		Center:  [2]float64{height / 2, width / 2},
		Markers: make([]Marker, 0, len(robots)),
	}
	for _, r := range robots {
		m.Markers = append(m.Markers, Marker{
			RobotID:  r.ID,
			Name:     r.Name,
			Status:   r.Status,
			Position: [2]float64{r.Location.Y, r.Location.X},
			Task:     r.CurrentTask,
		})
	}
	return m
}
