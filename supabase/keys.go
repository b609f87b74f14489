package supabase

import (
	"github.com/golang-jwt/jwt/v5"
)

// KeyRole extracts the role claim from an API key without verifying the
// signature. The keys are opaque credentials to this process; the role is
// only read at startup to catch a swapped anon/service-role pair early.
func KeyRole(apiKey string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(apiKey, claims); err != nil {
		return "", err
	}
	role, _ := claims["role"].(string)
	return role, nil
}
