package models

type User struct {
	Username     string `json:"username"`
	Salt         string `json:"-"` // don’t expose salt
	PasswordHash string `json:"-"` // don’t expose hash
}
