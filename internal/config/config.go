package config

import "os"

type Config struct {
	API      APIConfig
	Postgres PostgresConfig
}

type APIConfig struct {
	Port     string
	Platform string
	Secret   string
	PolkaKey string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

func Load() Config {
	return Config{
		API: APIConfig{
			Port:     getenv("PORT", "8080"),
			Platform: os.Getenv("PLATFORM"),
			Secret:   os.Getenv("SECRET"),
			PolkaKey: os.Getenv("POLKA_KEY"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
