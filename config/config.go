package config

import (
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

var JWT_KEY []byte

// Load reads .env (if present) and the required environment. Called once at
// process start.
func Load() error {
	_ = godotenv.Load()

	key := os.Getenv("JWT_KEY")
	if key == "" {
		return fmt.Errorf("JWT_KEY must be set")
	}
	JWT_KEY = []byte(key)
	return nil
}

type JWTClaims struct {
	EmployeeId int64  `json:"id"`
	Username   string `json:"username"`
	jwt.RegisteredClaims
}
