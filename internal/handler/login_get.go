package handler

import (
	"net/http"
)

type LoginGet struct {
	Base
}

func (s *LoginGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	WriteJSON(w, http.StatusOK, &LoginView{
		Ok:            true,
		Authenticated: s.Session.IsAuthenticated(),
		Messages:      Flash{Store: s.FlashStore}.Messages(w, r),
	})
}

type LoginView struct {
	Ok            bool     `json:"ok"`
	Authenticated bool     `json:"authenticated"`
	Messages      []string `json:"messages"`
}
