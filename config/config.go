package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`

		// Company is used to sign notifications when the content store has no company section.
		Company struct {
			Name    string `envconfig:"NAME"`
			Phone   string `envconfig:"PHONE"`
			Email   string `envconfig:"EMAIL"`
			Website string `envconfig:"WEBSITE"`
		} `envconfig:"COMPANY"`

		Listing struct {
			PageSize int `envconfig:"PAGE_SIZE" default:"15"`
		} `envconfig:"LISTING"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	// JWT only verifies staff sessions; tokens are issued by the authentication service.
	JWT struct {
		AccessSecret string `envconfig:"ACCESS_SECRET"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int            `envconfig:"MAX_RETRY"`
			RetryWaitTime  int            `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string         `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool           `envconfig:"AUTO_MIGRATE"`
			Prefix         string         `envconfig:"PREFIX"`
			Read           DatabaseServer `envconfig:"READ"`
			Write          DatabaseServer `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Mail struct {
		Enable      bool   `envconfig:"ENABLE"`
		Host        string `envconfig:"HOST"`
		Port        int    `envconfig:"PORT" default:"587"`
		Username    string `envconfig:"USERNAME"`
		Password    string `envconfig:"PASSWORD"`
		FromAddress string `envconfig:"FROM_ADDRESS"`
		FromName    string `envconfig:"FROM_NAME"`
		// TLSPolicy is one of "mandatory", "opportunistic" or "none".
		TLSPolicy      string `envconfig:"TLS_POLICY" default:"opportunistic"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"15"`
	} `envconfig:"MAIL"`

	Notification struct {
		AlertRecipient string `envconfig:"ALERT_RECIPIENT"`
		SubjectPrefix  string `envconfig:"SUBJECT_PREFIX"`
	} `envconfig:"NOTIFICATION"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

// DatabaseServer is one postgres server of the read/write pair.
type DatabaseServer struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

// Init loads .env when present and then reads the environment into the shared Config. A missing
// .env file is not an error.
func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		}

		if err = envconfig.Process("", &conf); err != nil {
			err = fmt.Errorf("failed to process environment variables: %w", err)

			return
		}

		initialized = true

		log.Info().Str("env", conf.Server.Env).Msg("Service configuration initialized successfully")
	})

	return err
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
