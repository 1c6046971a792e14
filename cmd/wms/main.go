package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/wmsdemo/wms/pkg/wms"
)

func main() {
	cfg, err := wms.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	cfg.ParseFlags()

	service, err := cfg.BuildService()
	if err != nil {
		log.Fatal(err)
	}

	loggedRouter := handlers.LoggingHandler(os.Stdout, service.Handler)
	srv := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: loggedRouter,
	}

	go func() {
		log.Printf("Listening on %s...", cfg.ListenAddress)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(ctx)
	if err != nil {
		log.Printf("Shutdown: %v", err)
	}

	err = service.Close()
	if err != nil {
		log.Fatal(err)
	}
}
