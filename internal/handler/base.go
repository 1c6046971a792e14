package handler

import (
	"github.com/gorilla/sessions"
	"github.com/wmsdemo/wms/internal/controller"
	"github.com/wmsdemo/wms/internal/session"
)

type Base struct {
	Session    *session.Store
	FlashStore sessions.Store
	Users      *controller.Users
	Locations  *controller.Locations
	Routes     *controller.Routes
	Robots     *controller.Robots
}
