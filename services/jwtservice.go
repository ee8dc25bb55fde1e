package services

import (
	"errors"
	"fmt"
	"time"

	"sibi-cuisine/dto"
	"sibi-cuisine/model"

	"github.com/golang-jwt/jwt/v5"
)

// Access tokens are valid for one hour from issuance.
const accessTokenTTL = 60 * time.Minute

func CreateAccessToken(secret []byte, identity dto.TokenRequest) (string, error) {
	claims := &model.AccessClaims{
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "sibi-cuisine",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseAccessToken verifies signature and expiry and returns the claims.
func ParseAccessToken(secret []byte, tokenString string) (*model.AccessClaims, error) {
	claims := &model.AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
