package handler

import (
	"log"
	"net/http"
)

const (
	homePath             = "/users"
	invalidCredentialMsg = "Invalid username or password"
)

type LoginPost struct {
	Base
}

func (s *LoginPost) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	err := r.ParseForm()
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	flash := Flash{Store: s.FlashStore}
	username := r.PostForm.Get("username")

	if !s.Session.Login(username, r.PostForm.Get("password")) {
		log.Printf("Failed login for %q", username)
		flash.AddMessage(w, r, invalidCredentialMsg)
		http.Redirect(w, r, LoginPath, http.StatusSeeOther)
		return
	}

	log.Printf("Login of %q", username)
	http.Redirect(w, r, flash.PopTarget(w, r, homePath), http.StatusSeeOther)
}
