package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	FirebaseApiKey  string
	StorageBucket   string

	PaypalClientID    string
	PaypalSecret      string
	PaypalEnvironment string
	PaymentCurrency   string
	PaymentIntent     string
	SuccessURL        string
	CancelURL         string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:  getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),

		PaypalClientID:    getEnv("PAYPAL_CLIENT_ID", ""),
		PaypalSecret:      getEnv("PAYPAL_SECRET", ""),
		PaypalEnvironment: getEnv("PAYPAL_ENVIRONMENT", "sandbox"),
		PaymentCurrency:   getEnv("PAYMENT_CURRENCY", "USD"),
		PaymentIntent:     getEnv("PAYMENT_INTENT", "CAPTURE"),
		SuccessURL:        getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:5173/success"),
		CancelURL:         getEnv("CHECKOUT_CANCEL_URL", "http://localhost:5173/tienda"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
