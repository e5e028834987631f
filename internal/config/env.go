package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string
	// AppEnv switches error verbosity: "development" includes internal
	// error text in 500 responses, anything else stays generic.
	AppEnv string

	DatabaseDSN string

	CORSAllowedOrigins []string

	// AdminPassword is the single operator credential. Stored hashed (bcrypt)
	// in the admins table; only the hash is compared at login.
	AdminPassword string

	// SessionSecret signs session tokens. Sessions only live in memory, so
	// rotating it just invalidates them like a restart would.
	SessionSecret string

	// Media host (Cloudinary-style upload API).
	CloudName      string
	CloudAPIKey    string
	CloudAPISecret string
	CloudUploadURL string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			appAddr = ":" + port
		} else {
			appAddr = ":8080"
		}
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "development"
	}

	dsn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/booststudio?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	origins := []string{"http://localhost:5173", "http://localhost:5174"}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	adminPassword := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD"))
	if adminPassword == "" {
		adminPassword = "booststudio2024"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "boost-studio-session-secret-change-me"
	}

	uploadURL := strings.TrimSpace(os.Getenv("CLOUD_UPLOAD_URL"))
	if uploadURL == "" {
		uploadURL = "https://api.cloudinary.com/v1_1"
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		AppEnv:             appEnv,
		DatabaseDSN:        dsn,
		CORSAllowedOrigins: origins,
		AdminPassword:      adminPassword,
		SessionSecret:      sessionSecret,
		CloudName:          strings.TrimSpace(os.Getenv("CLOUD_NAME")),
		CloudAPIKey:        strings.TrimSpace(os.Getenv("CLOUD_API_KEY")),
		CloudAPISecret:     strings.TrimSpace(os.Getenv("CLOUD_API_SECRET")),
		CloudUploadURL:     uploadURL,
	}
}

// IsDevelopment reports whether detailed error text may be exposed.
func (e Env) IsDevelopment() bool {
	return strings.EqualFold(e.AppEnv, "development") || strings.EqualFold(e.AppEnv, "dev")
}
