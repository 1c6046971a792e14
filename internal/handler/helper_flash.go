package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
)

const (
	flashName   = "wms_flash"
	flashTarget = "target"
)

// Flash keeps short lived per browser state in a signed cookie: messages
// for the next view and the path to return to after login. Without a
// Store nothing is kept.
type Flash struct {
	Store sessions.Store
}

func (f Flash) session(r *http.Request) *sessions.Session {
	if f.Store == nil {
		return sessions.NewSession(nil, flashName)
	}
	s, err := f.Store.Get(r, flashName)
	if err != nil {
		// a cookie signed with an old key, start over with a new one
		log.Printf("Dropping invalid flash cookie: %v", err)
	}
	return s
}

func (f Flash) AddMessage(w http.ResponseWriter, r *http.Request, msg string) {
	s := f.session(r)
	s.AddFlash(msg)
	f.save(w, r, s)
}

func (f Flash) Messages(w http.ResponseWriter, r *http.Request) []string {
	s := f.session(r)
	flashes := s.Flashes()
	messages := make([]string, 0, len(flashes))
	for _, fl := range flashes {
		if msg, ok := fl.(string); ok {
			messages = append(messages, msg)
		}
	}
	if len(flashes) > 0 {
		f.save(w, r, s)
	}
	return messages
}

func (f Flash) RememberTarget(w http.ResponseWriter, r *http.Request, target string) {
	s := f.session(r)
	s.Values[flashTarget] = target
	f.save(w, r, s)
}

// PopTarget returns the remembered target or fallback. Only
// local paths are returned.
func (f Flash) PopTarget(w http.ResponseWriter, r *http.Request, fallback string) string {
	s := f.session(r)
	target, _ := s.Values[flashTarget].(string)
	if target == "" {
		return fallback
	}
	delete(s.Values, flashTarget)
	f.save(w, r, s)

	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return fallback
	}
	return target
}

func (f Flash) save(w http.ResponseWriter, r *http.Request, s *sessions.Session) {
	if f.Store == nil {
		return
	}
	err := s.Save(r, w)
	if err != nil {
		log.Printf("Failed to save flash cookie: %v", err)
	}
}
