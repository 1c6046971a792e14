package wms

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	uuid "github.com/satori/go.uuid"
	"github.com/wmsdemo/wms/internal/adapter/bbolt_engine"
	"github.com/wmsdemo/wms/internal/adapter/search"
	"github.com/wmsdemo/wms/internal/controller"
	"github.com/wmsdemo/wms/internal/handler"
	"github.com/wmsdemo/wms/internal/session"
	"github.com/wmsdemo/wms/pkg/model"
	"github.com/wmsdemo/wms/pkg/public"
)

type Config struct {
	ListenAddress string `env:"WMS_LISTEN_ADDRESS" envDefault:":8080"`
	DatabasePath  string `env:"WMS_DB" envDefault:"./wms.db"`
	PublicDir     string `env:"WMS_PUBLIC"`
	SessionSecret string `env:"WMS_SESSION_SECRET"`
	ClearOnClose  bool   `env:"WMS_CLEAR_ON_CLOSE" envDefault:"false"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseFlags lets command line flags override the environment
func (c *Config) ParseFlags() {
	err := c.parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func (c *Config) parseFlags(fs *flag.FlagSet, args []string) error {
	fs.StringVar(&c.ListenAddress, "addr", c.ListenAddress, "address to listen on")
	fs.StringVar(&c.DatabasePath, "db", c.DatabasePath, "path of the local storage database")
	fs.StringVar(&c.PublicDir, "public", c.PublicDir, "directory with the frontend bundle")
	fs.BoolVar(&c.ClearOnClose, "clear-on-close", c.ClearOnClose, "remove the persisted session on shutdown")
	return fs.Parse(args)
}

func (c *Config) sessionKey() []byte {
	if c.SessionSecret != "" {
		return []byte(c.SessionSecret)
	}
	log.Println("No WMS_SESSION_SECRET set, flash cookies will not survive a restart")
	return securecookie.GenerateRandomKey(32)
}

func (c *Config) BuildService() (*WMS, error) {
	var closers []io.Closer
	fail := func(err error) (*WMS, error) {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i].Close() // nolint: errcheck
		}
		return nil, err
	}

	kv, err := bbolt_engine.OpenLocalStorage(c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage %q: %w", c.DatabasePath, err)
	}
	closers = append(closers, kv)
	log.Printf("Opened %s", kv)

	creds, err := model.StaticCredentials()
	if err != nil {
		return fail(err)
	}

	store, err := session.Open(kv, creds)
	if err != nil {
		return fail(err)
	}
	store.ClearOnClose = c.ClearOnClose

	userIndex, err := search.NewIndex("users")
	if err != nil {
		return fail(err)
	}
	closers = append(closers, userIndex)

	locationIndex, err := search.NewIndex("storage")
	if err != nil {
		return fail(err)
	}
	closers = append(closers, locationIndex)

	users, err := controller.NewUsers(userIndex)
	if err != nil {
		return fail(err)
	}
	locations, err := controller.NewLocations(locationIndex)
	if err != nil {
		return fail(err)
	}

	flashStore := sessions.NewCookieStore(c.sessionKey())
	flashStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	r := mux.NewRouter()
	if c.PublicDir != "" {
		err = public.Public{Dir: c.PublicDir}.Mount(r)
		if err != nil {
			return fail(err)
		}
	}

	err = handler.Router{
		Session:    store,
		FlashStore: flashStore,
		InstanceID: uuid.NewV4().String(),
		Users:      users,
		Locations:  locations,
		Routes:     controller.NewRoutes(),
		Robots:     controller.NewRobots(time.Now()),
	}.Build(r)
	if err != nil {
		return fail(err)
	}

	return &WMS{
		Session: store,
		Handler: handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(r),
		closers: closers,
	}, nil
}
