package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("GOLDENTHREAD_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("GOLDENTHREAD_JWT_ISSUER")
	if issuer == "" {
		issuer = "goldenthread"
	}

	hours := 24
	if raw := os.Getenv("GOLDENTHREAD_JWT_TTL_HOURS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			hours = n
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: time.Duration(hours) * time.Hour,
	}
}

type ServerConfig struct {
	HTTPAddr string
	TCPAddr  string
	DataDir  string
}

func LoadServerConfig() ServerConfig {
	cfg := ServerConfig{
		HTTPAddr: ":8080",
		TCPAddr:  ":7070",
		DataDir:  "data",
	}
	if v := os.Getenv("GOLDENTHREAD_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("GOLDENTHREAD_TCP_ADDR"); v != "" {
		cfg.TCPAddr = v
	}
	if v := os.Getenv("GOLDENTHREAD_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	return cfg
}
