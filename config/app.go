package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool
	// EditModeKey is the shared secret for catalog edit mode. A placeholder
	// gate, not a security boundary.
	EditModeKey string
	// TaxRate applied by checkout when building new orders.
	TaxRate float64
}

// LoadAppConfig initializes the global AppConfig variable on first call and
// returns it.
func LoadAppConfig() *Config {
	once.Do(func() {
		taxRate := 0.08
		if v := os.Getenv("TAX_RATE"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
				taxRate = f
			}
		}
		AppConfig = &Config{
			AppName:     os.Getenv("APP_NAME"),
			Port:        os.Getenv("PORT"),
			Env:         os.Getenv("APP_ENV"),
			Debug:       os.Getenv("DEBUG") == "true",
			EditModeKey: GetEnv("EDIT_MODE_KEY", "MBS2024admin"),
			TaxRate:     taxRate,
		}
	})
	return AppConfig
}
