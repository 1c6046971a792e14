package controller

import (
	"time"

	"github.com/wmsdemo/wms/pkg/model"
)

// Mock data, every process start begins with the same records.

const (
	WarehouseWidth  = 100
	WarehouseHeight = 100
)

func seedUsers() []model.User {
	return []model.User{
		{ID: 1, Name: "John Doe", Role: "Warehouse Manager", Department: "Operations"},
		{ID: 2, Name: "Jane Smith", Role: "Picker", Department: "Fulfillment"},
		{ID: 3, Name: "Mike Johnson", Role: "Forklift Operator", Department: "Operations"},
	}
}

func seedLocations() []model.StorageLocation {
	return []model.StorageLocation{
		{ID: 1, Zone: "A", Aisle: "01", Shelf: "01", Capacity: 100, Occupied: 75, Status: model.LocationAvailable},
		{ID: 2, Zone: "A", Aisle: "01", Shelf: "02", Capacity: 100, Occupied: 100, Status: model.LocationFull},
		{ID: 3, Zone: "B", Aisle: "02", Shelf: "01", Capacity: 150, Occupied: 0, Status: model.LocationMaintenance},
	}
}

func seedRoutes() []model.RouteData {
	return []model.RouteData{
		{ID: 1, UserID: 1, Date: "2024-01-15", Steps: 5420, Distance: 4.2, Locations: []string{"A-01-01", "B-02-01", "A-01-02"}, TimeSpent: 185},
		{ID: 2, UserID: 2, Date: "2024-01-15", Steps: 7850, Distance: 6.1, Locations: []string{"B-02-01", "A-01-01"}, TimeSpent: 245},
		{ID: 3, UserID: 1, Date: "2024-01-16", Steps: 4980, Distance: 3.9, Locations: []string{"A-01-02", "B-02-01"}, TimeSpent: 165},
	}
}

func seedRobots(now time.Time) []model.Robot {
	return []model.Robot{
		{
			ID:              1,
			Name:            "Robot-01",
			Status:          model.RobotActive,
			Battery:         85,
			Location:        model.Location{X: 10, Y: 20, Zone: "A1"},
			LastMaintenance: now,
			TotalTasks:      150,
		},
	}
}

func seedTasks(now time.Time) []model.RobotTask {
	return []model.RobotTask{
		{
			ID:        1,
			RobotID:   1,
			Status:    model.TaskPending,
			Type:      "Inspection",
			Location:  model.Location{X: 10, Y: 20, Zone: "A1"},
			StartTime: now,
			Battery:   85,
			TaskLoad:  30,
		},
	}
}

func userID(u model.User) int                        { return u.ID }
func setUserID(u *model.User, id int)                { u.ID = id }
func locationID(l model.StorageLocation) int         { return l.ID }
func setLocationID(l *model.StorageLocation, id int) { l.ID = id }
func taskID(t model.RobotTask) int                   { return t.ID }
func setTaskID(t *model.RobotTask, id int)           { t.ID = id }
