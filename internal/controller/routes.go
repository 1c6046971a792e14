package controller

import (
	"github.com/wmsdemo/wms/internal/adapter/reducer"
	"github.com/wmsdemo/wms/pkg/model"
)

type RouteRow struct {
	model.RouteData
	UserName string `json:"userName"`
}

type RoutesReport struct {
	Routes    []RouteRow             `json:"routes"`
	Analytics []model.RouteAnalytics `json:"analytics"`
}

// Routes reports on the fixed personnel route records. The personnel
// list used here is its own copy and does not follow user edits.
type Routes struct {
	routes []model.RouteData
	users  []model.User
}

func NewRoutes() *Routes {
	return &Routes{
		routes: seedRoutes(),
		users:  seedUsers(),
	}
}

func (c *Routes) Report() *RoutesReport {
	names := make(map[int]string, len(c.users))
	for _, u := range c.users {
		names[u.ID] = u.Name
	}

	steps := reducer.NewStats()
	distance := reducer.NewStats()
	report := &RoutesReport{
		Routes:    make([]RouteRow, 0, len(c.routes)),
		Analytics: make([]model.RouteAnalytics, 0, len(c.users)),
	}
	for _, r := range c.routes {
		report.Routes = append(report.Routes, RouteRow{
			RouteData: r,
			UserName:  names[r.UserID],
		})
		steps.Reduce(reducer.Row{Key: r.UserID, Value: float64(r.Steps)})
		distance.Reduce(reducer.Row{Key: r.UserID, Value: r.Distance})
	}

	// users without routes average to zero
	for _, u := range c.users {
		report.Analytics = append(report.Analytics, model.NewRouteAnalytics(
			u.Name,
			steps.Get(u.ID).Mean(),
			distance.Get(u.ID).Mean(),
		))
	}
	return report
}
