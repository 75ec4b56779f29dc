package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings shared by both services.
// DirectoryBaseURL and ChangeWebhookURL only matter to the coordinator.
type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	DirectoryBaseURL string        `env:"DIRECTORY_BASE_URL" envDefault:"http://localhost:8081"`
	DirectoryTimeout time.Duration `env:"DIRECTORY_TIMEOUT" envDefault:"3s"`
	ChangeWebhookURL string        `env:"CHANGE_WEBHOOK_URL"`
	EventBufferSize  int           `env:"EVENT_BUFFER_SIZE" envDefault:"256"`
	JobSchedule      string        `env:"JOB_SCHEDULE" envDefault:"*/5 * * * * *"`
}

// LoadConfig reads the configuration from the environment, after loading a
// .env file when one is present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	return env.ParseAs[Config]()
}

// DSN renders the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
