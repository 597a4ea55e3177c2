package config

import "os"

type Config struct {
	Port                    string
	Env                     string
	ClientOrigin            string
	TokenSecret             string
	PostgresConnStr         string
	FirebaseCredentialsPath string
	StorageEndpoint         string
	StorageBucket           string
	StorageProjectID        string
	SMTPHost                string
	SMTPPort                string
	MailUser                string
	MailPassword            string
	MailFrom                string
}

func Load() *Config {
	return &Config{
		Port:                    getEnv("PORT", "1099"),
		Env:                     getEnv("ENV", "development"),
		ClientOrigin:            getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		TokenSecret:             getEnv("TOKEN_SECRET", ""),
		PostgresConnStr:         getEnv("POSTGRES_CONN_STR", ""),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase_credentials.json"),
		StorageEndpoint:         getEnv("STORAGE_ENDPOINT", "https://firebasestorage.googleapis.com"),
		StorageBucket:           getEnv("STORAGE_BUCKET", ""),
		StorageProjectID:        getEnv("STORAGE_PROJECT_ID", ""),
		SMTPHost:                getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:                getEnv("SMTP_PORT", "587"),
		MailUser:                getEnv("MAIL_USER", ""),
		MailPassword:            getEnv("MAIL_PASSWORD", ""),
		MailFrom:                getEnv("MAIL_FROM", "aeiluminate@gmail.com"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
