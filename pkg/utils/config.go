package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Booking BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// StorageConfig selects the snapshot backend: "file" (default), "postgres"
// or "redis".
type StorageConfig struct {
	Backend  string
	FileDir  string
	Postgres PostgresConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type BookingConfig struct {
	TicketPrice      float64
	SeatsPerShowtime int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cine-reserve")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("STORAGE_FILE_DIR", "data/")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_PREFIX", "cine-reserve")
	viper.SetDefault("TICKET_PRICE", 12.99)
	viper.SetDefault("SEATS_PER_SHOWTIME", 50)

	// A missing .env is fine, defaults and the process environment cover
	// everything.
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Storage: StorageConfig{
			Backend: viper.GetString("STORAGE_BACKEND"),
			FileDir: viper.GetString("STORAGE_FILE_DIR"),
			Postgres: PostgresConfig{
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				Name:     viper.GetString("DB_NAME"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASS"),
				MaxConns: viper.GetInt32("DB_MAX_CONNS"),
			},
			Redis: RedisConfig{
				Addr:     viper.GetString("REDIS_ADDR"),
				Password: viper.GetString("REDIS_PASSWORD"),
				DB:       viper.GetInt("REDIS_DB"),
				Prefix:   viper.GetString("REDIS_PREFIX"),
			},
		},
		Booking: BookingConfig{
			TicketPrice:      viper.GetFloat64("TICKET_PRICE"),
			SeatsPerShowtime: viper.GetInt("SEATS_PER_SHOWTIME"),
		},
	}

	return config, nil
}
