package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmsdemo/wms/pkg/model"
	"github.com/wmsdemo/wms/pkg/port"
)

func TestRobotsConfirmTask(t *testing.T) {
	c := NewRobots(time.Now())

	task, err := c.ConfirmTask(1)
	require.NoError(t, err)
	assert.Equal(t, model.TaskInProgress, task.Status)

	_, err = c.StartTask(1)
	assert.ErrorIs(t, err, model.ErrTaskNotPending)

	err = c.CancelTask(1)
	assert.ErrorIs(t, err, model.ErrTaskNotPending)
	assert.Len(t, c.Tasks(), 1)
}

func TestRobotsCancelTask(t *testing.T) {
	c := NewRobots(time.Now())
	assert.NoError(t, c.CancelTask(1))
	assert.Empty(t, c.Tasks())
	assert.ErrorIs(t, c.CancelTask(1), port.ErrNotFound)
	_, err := c.StartTask(1)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestRobotsMap(t *testing.T) {
	c := NewRobots(time.Now())
	m := c.Map()
	assert.Equal(t, [2]float64{50, 50}, m.Center)
	if assert.Len(t, m.Markers, 1) {
		assert.Equal(t, "Robot-01", m.Markers[0].Name)
		assert.Equal(t, [2]float64{20, 10}, m.Markers[0].Position)
	}

	r, err := c.Robot(1)
	require.NoError(t, err)
	assert.Equal(t, 150, r.TotalTasks)
	_, err = c.Robot(2)
	assert.ErrorIs(t, err, port.ErrNotFound)
}
