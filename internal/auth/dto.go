package auth

import "strings"

type RegisterDTO struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128,maxbytes=72,hasdigit"`
}

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (d *RegisterDTO) Normalize() {
	d.Email = strings.TrimSpace(d.Email)
}

func (d *LoginDTO) Normalize() {
	d.Email = strings.TrimSpace(d.Email)
}
