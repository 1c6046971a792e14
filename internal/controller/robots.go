package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/wmsdemo/wms/pkg/model"
	"github.com/wmsdemo/wms/pkg/port"
)

// Robots is the robot dashboard: a fixed fleet and its task list.
type Robots struct {
	robots []model.Robot
	tasks  *Collection[model.RobotTask]
}

func NewRobots(now time.Time) *Robots {
	return &Robots{
		robots: seedRobots(now),
		tasks:  NewCollection(seedTasks(now), taskID, setTaskID),
	}
}

func (c *Robots) Map() model.WarehouseMap {
	return model.NewWarehouseMap(WarehouseWidth, WarehouseHeight, c.robots)
}

func (c *Robots) Robots() []model.Robot {
	robots := make([]model.Robot, len(c.robots))
	copy(robots, c.robots)
	return robots
}

func (c *Robots) Robot(id int) (*model.Robot, error) {
	for _, r := range c.robots {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, port.ErrNotFound
}

func (c *Robots) Tasks() []model.RobotTask {
	return c.tasks.All()
}

// ConfirmTask puts a pending task in progress
func (c *Robots) ConfirmTask(id int) (*model.RobotTask, error) {
	return c.startTask(id, "Confirmed")
}

// StartTask puts a pending task in progress
func (c *Robots) StartTask(id int) (*model.RobotTask, error) {
	return c.startTask(id, "Started")
}

func (c *Robots) startTask(id int, action string) (*model.RobotTask, error) {
	updated, err := c.tasks.Update(id, func(t *model.RobotTask) error {
		return t.Start()
	})
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, port.ErrNotFound
	}
	log.Printf("%s %s", action, updated[0].Item)
	return &updated[0].Item, nil
}

// CancelTask drops a pending task from the task list
func (c *Robots) CancelTask(id int) error {
	keys, err := c.tasks.DeleteIf(id, func(t model.RobotTask) error {
		if !t.Cancelable() {
			return fmt.Errorf("can't cancel task %d in status %q: %w", t.ID, t.Status, model.ErrTaskNotPending)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return port.ErrNotFound
	}
	log.Printf("Canceled task %d", id)
	return nil
}
