package domain

import "errors"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("incorrect password")

// User models a registered account. Name is the uniqueness key at signup;
// login looks accounts up by email. PasswordHash holds the bcrypt digest
// and is serialized under "password", matching the wire contract — the
// plaintext is never stored.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}
