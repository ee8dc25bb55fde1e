package model

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the signed identity carried by a bearer token. The payload
// is whatever the caller supplied at issuance; email is the only field the
// rest of the system relies on.
type AccessClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
