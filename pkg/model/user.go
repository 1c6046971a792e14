package model

import "fmt"

// User is a member of the warehouse personnel.
type User struct {
	ID         int    `mapstructure:"id" json:"id"`
	Name       string `mapstructure:"name" json:"name"`
	Role       string `mapstructure:"role" json:"role"`
	Department string `mapstructure:"department" json:"department"`
}

func (u User) String() string {
	return fmt.Sprintf("<User id=%d name=%q>", u.ID, u.Name)
}

func (u User) Validate() error {
	return requireFields(map[string]string{
		"name":       u.Name,
		"role":       u.Role,
		"department": u.Department,
	})
}
