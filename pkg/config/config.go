package config

import "os"

type Config struct {
	AppEnv   string
	LogLevel string

	// CatalogManifest is a YAML catalog file; empty means the built-in one.
	CatalogManifest string
	CurrencySymbol  string
}

func Load() Config {
	return Config{
		AppEnv:          getEnv("APP_ENV", "dev"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CatalogManifest: getEnv("CATALOG_MANIFEST", ""),
		CurrencySymbol:  getEnv("CURRENCY_SYMBOL", "₹"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
