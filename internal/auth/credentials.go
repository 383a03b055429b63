package auth

import (
	"github.com/studioreel/website/pkg/utils"
)

// Credentials is the single configured back-office account.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string // bcrypt; preferred over Password when set
}

// Authenticate reports whether username and password match the configured account.
func (c Credentials) Authenticate(username, password string) bool {
	userOK := utils.EqualConstantTime(username, c.Username)
	var passOK bool
	switch {
	case c.PasswordHash != "":
		passOK = utils.CheckPassword(password, c.PasswordHash)
	case c.Password != "":
		passOK = utils.EqualConstantTime(password, c.Password)
	}
	return userOK && passOK && c.Username != ""
}
