package model

import "math"

// RouteData is the walk of one user on one day.
type RouteData struct {
	ID        int      `json:"id"`
	UserID    int      `json:"userId"`
	Date      string   `json:"date"`
	Steps     int      `json:"steps"`
	Distance  float64  `json:"distance"` // km
	Locations []string `json:"locations"`
	TimeSpent int      `json:"timeSpent"` // minutes
}

type RouteAnalytics struct {
	Name            string  `json:"name"`
	AverageSteps    int     `json:"averageSteps"`
	AverageDistance float64 `json:"averageDistance"`
}

// NewRouteAnalytics rounds the mean steps to an integer, half up,
// and the mean distance to one decimal.
func NewRouteAnalytics(name string, meanSteps, meanDistance float64) RouteAnalytics {
	return RouteAnalytics{
		Name:            name,
		AverageSteps:    int(math.Floor(meanSteps + 0.5)),
		AverageDistance: math.Round(meanDistance*10) / 10,
	}
}
