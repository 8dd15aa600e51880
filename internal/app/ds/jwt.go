package ds

import "github.com/golang-jwt/jwt"

type SessionClaims struct {
	jwt.StandardClaims
	UserID uint `json:"user_id"`
}
