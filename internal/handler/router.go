package handler

import (
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/wmsdemo/wms/internal/controller"
	"github.com/wmsdemo/wms/internal/session"
)

type Router struct {
	Session    *session.Store
	FlashStore sessions.Store
	InstanceID string
	Users      *controller.Users
	Locations  *controller.Locations
	Routes     *controller.Routes
	Robots     *controller.Robots
}

func (router Router) Build(r *mux.Router) error {
	b := Base{
		Session:    router.Session,
		FlashStore: router.FlashStore,
		Users:      router.Users,
		Locations:  router.Locations,
		Routes:     router.Routes,
		Robots:     router.Robots,
	}

	r.Methods("GET").Path("/_info").Handler(&Info{InstanceID: router.InstanceID})

	r.Methods("GET").Path("/_session").Handler(&SessionGet{Base: b})
	r.Methods("POST").Path("/_session").Handler(&SessionPost{Base: b})
	r.Methods("DELETE").Path("/_session").Handler(&SessionDelete{Base: b})

	r.Methods("GET").Path(LoginPath).Handler(&LoginGet{Base: b})
	r.Methods("POST").Path(LoginPath).Handler(&LoginPost{Base: b})

	// everything below requires an authenticated session
	p := r.PathPrefix("/").Subrouter()
	p.Use(Guard{Session: router.Session, Flash: Flash{Store: router.FlashStore}}.Middleware)

	p.Methods("POST").Path("/logout").Handler(&LogoutPost{})

	p.Methods("GET").Path("/users").Handler(&UsersGet{Base: b})
	p.Methods("POST").Path("/users").Handler(&UsersPost{Base: b})
	p.Methods("PUT").Path("/users/{id:[0-9]+}").Handler(&UsersPut{Base: b})
	p.Methods("DELETE").Path("/users/{id:[0-9]+}").Handler(&UsersDelete{Base: b})

	p.Methods("GET").Path("/storage").Handler(&StorageGet{Base: b})
	p.Methods("POST").Path("/storage").Handler(&StoragePost{Base: b})
	p.Methods("PUT").Path("/storage/{id:[0-9]+}").Handler(&StoragePut{Base: b})
	p.Methods("DELETE").Path("/storage/{id:[0-9]+}").Handler(&StorageDelete{Base: b})

	p.Methods("GET").Path("/routes").Handler(&RoutesGet{Base: b})

	p.Methods("GET").Path("/robots").Handler(&RobotsGet{Base: b})
	p.Methods("GET").Path("/robots/tasks").Handler(&RobotTasksGet{Base: b})
	p.Methods("POST").Path("/robots/tasks/{id:[0-9]+}/confirm").Handler(&RobotTaskAction{Base: b, Action: TaskConfirm})
	p.Methods("POST").Path("/robots/tasks/{id:[0-9]+}/start").Handler(&RobotTaskAction{Base: b, Action: TaskStart})
	p.Methods("POST").Path("/robots/tasks/{id:[0-9]+}/cancel").Handler(&RobotTaskAction{Base: b, Action: TaskCancel})
	p.Methods("DELETE").Path("/robots/tasks/{id:[0-9]+}").Handler(&RobotTaskAction{Base: b, Action: TaskCancel})
	p.Methods("GET").Path("/robots/{id:[0-9]+}").Handler(&RobotGet{Base: b})

	p.Methods("GET").Path("/").Handler(&Home{})

	return nil
}
