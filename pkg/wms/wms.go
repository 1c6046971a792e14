package wms

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/wmsdemo/wms/internal/session"
)

type WMS struct {
	Session *session.Store
	Handler http.Handler

	closers []io.Closer
}

// Close tears down the session store first and then releases
// the search indices and the local storage.
func (w *WMS) Close() error {
	err := w.Session.Close()
	if err != nil {
		log.Printf("Failed to close session store: %v", err)
	}

	for i := len(w.closers) - 1; i >= 0; i-- {
		cerr := w.closers[i].Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %v: %w", w.closers[i], cerr)
		}
	}
	return err
}
