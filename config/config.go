package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting for the service. Values come from the
// environment (optionally seeded from a .env file) with development defaults.
type Config struct {
	AppPort      string
	SecretKey    string
	DatabasePath string

	// Drive (S3-compatible) settings. The two ledger tables and the photo
	// folders all live in this bucket.
	S3Bucket    string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string

	// FirebaseCredentials points at a service-account JSON file. Empty
	// disables push notifications.
	FirebaseCredentials string

	// VisibilityCutoff is the time of day (HH:MM) from which parents may see
	// the current day's records. The two deployments of the original app used
	// 17:00 and 08:00, so it stays configurable.
	VisibilityCutoff string

	// AllowOvernight controls whether a departure at or before the arrival
	// time wraps to the next day or gets rejected.
	AllowOvernight bool

	// Children is the roster. One parent account is seeded per child.
	Children []string

	NounouPassword string
	ParentPassword string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		AppPort:             getEnv("APP_PORT", "3000"),
		SecretKey:           getEnv("SECRET_KEY", "secret"),
		DatabasePath:        getEnv("DATABASE_PATH", "database.db"),
		S3Bucket:            getEnv("S3_BUCKET", "assmatapp"),
		S3Region:            getEnv("S3_REGION", "us-east-1"),
		S3AccessKey:         getEnv("S3_ACCESS_KEY", "admin"),
		S3SecretKey:         getEnv("S3_SECRET_KEY", "secretpassword"),
		S3Endpoint:          getEnv("S3_ENDPOINT", "http://127.0.0.1:9000/"),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		VisibilityCutoff:    getEnv("VISIBILITY_CUTOFF", "17:00"),
		AllowOvernight:      getEnv("ALLOW_OVERNIGHT", "true") == "true",
		Children:            splitList(getEnv("CHILDREN", "Caly,Nate")),
		NounouPassword:      getEnv("NOUNOU_PASSWORD", "nounou123"),
		ParentPassword:      getEnv("PARENT_PASSWORD", "parent123"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
