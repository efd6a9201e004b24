package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired inspects the stored token's exp claim without verifying its
// signature, to skip a round trip that is certain to fail. Unparseable
// tokens are treated as live: the server is the final judge.
func tokenExpired(tokenString string) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}
