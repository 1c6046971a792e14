package model

type AdminUser struct {
	Username string
	Password string
}

func (u AdminUser) String() string {
	return "<AdminUser Username=" + u.Username + ">"
}

type AdminUsers []AdminUser

func (a AdminUsers) Authenticate(username, password string) *AdminUser {
	for _, user := range a {
		if user.Username == username && user.Password == password {
			return &user
		}
	}
	return nil
}

func (a AdminUsers) Validate(username, password string) bool {
	return a.Authenticate(username, password) != nil
}
