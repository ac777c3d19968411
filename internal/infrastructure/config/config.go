// Package config resolves all runtime settings once at startup into an
// explicit struct handed to each component, instead of components reading
// ambient env vars at call time. Values come from the environment (a .env
// file is loaded by the api binary via godotenv/autoload).
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port     int
	AppName  string
	Database Database
	Auth     Auth
	Mail     Mail
	Render   Render
}

type Database struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // optional; e.g. http://dynamodb:8000 for local
	DocumentsTable  string
}

type Auth struct {
	JWTSecret string
	Issuer    string
}

type Mail struct {
	Backend     string // smtp | sendgrid | console
	SMTPHost    string
	SMTPPort    int
	Username    string
	Password    string
	From        string
	SendgridKey string
}

type Render struct {
	AssetTimeout time.Duration
	Scale        float64
}

func Load() Config {
	return Config{
		Port:    getenvInt("PORT", 8080),
		AppName: getenvDefault("APP_NAME", "Mwonto Consultants"),
		Database: Database{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			DocumentsTable:  getenvDefault("DOCUMENTS_TABLE", "documents"),
		},
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
			Issuer:    os.Getenv("AUTH_JWT_ISSUER"),
		},
		Mail: Mail{
			Backend:     getenvDefault("MAIL_BACKEND", "console"),
			SMTPHost:    getenvDefault("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:    getenvInt("SMTP_PORT", 587),
			Username:    os.Getenv("EMAIL_USER"),
			Password:    os.Getenv("EMAIL_PASSWORD"),
			From:        getenvDefault("EMAIL_FROM", os.Getenv("EMAIL_USER")),
			SendgridKey: os.Getenv("SENDGRID_API_KEY"),
		},
		Render: Render{
			AssetTimeout: getenvDuration("RENDER_ASSET_TIMEOUT", 5*time.Second),
			Scale:        getenvFloat("RENDER_SCALE", 2),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
