package viewmodel

import "github.com/ManuelReschke/InkFox/app/models"

// User is the account as shown to its owner. The password hash is never included.
type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewUser(u *models.User) User {
	return User{ID: u.ID, Name: u.Name, Email: u.Email}
}
