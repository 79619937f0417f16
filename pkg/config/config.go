package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App        AppConfig
	Service    ServiceConfig
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	CORS       CORSConfig
	Sendgrid   SendgridConfig
	Moderation ModerationConfig
	GCP        GCPConfig
	PubSub     PubSubConfig
	BigQuery   BigQueryConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AUTONOVO_APP_ENV" required:"true"`
	Port         string `envconfig:"AUTONOVO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"AUTONOVO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AUTONOVO_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"AUTONOVO_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"AUTONOVO_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"AUTONOVO_DB_DSN"`
	Driver string `envconfig:"AUTONOVO_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"AUTONOVO_DB_HOST"`
	LegacyPort     int    `envconfig:"AUTONOVO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"AUTONOVO_DB_USER"`
	LegacyPassword string `envconfig:"AUTONOVO_DB_PASSWORD"`
	LegacyName     string `envconfig:"AUTONOVO_DB_NAME"`
	LegacySSLMode  string `envconfig:"AUTONOVO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"AUTONOVO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"AUTONOVO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"AUTONOVO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"AUTONOVO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"AUTONOVO_REDIS_URL" required:"true"`
	Address      string        `envconfig:"AUTONOVO_REDIS_ADDR"`
	Password     string        `envconfig:"AUTONOVO_REDIS_PASSWORD"`
	DB           int           `envconfig:"AUTONOVO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AUTONOVO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AUTONOVO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AUTONOVO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AUTONOVO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AUTONOVO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"AUTONOVO_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"AUTONOVO_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"AUTONOVO_JWT_EXPIRATION_MINUTES" default:"60"`
}

type CORSConfig struct {
	// The notification endpoints are called from browser contexts on arbitrary
	// storefront domains, so the origin policy defaults to wildcard.
	AllowedOrigins []string `envconfig:"AUTONOVO_CORS_ALLOWED_ORIGINS" default:"*"`
	MaxAgeSeconds  int      `envconfig:"AUTONOVO_CORS_MAX_AGE_SECONDS" default:"300"`
}

type SendgridConfig struct {
	APIKey     string `envconfig:"AUTONOVO_SENDGRID_API_KEY"`
	FromEmail  string `envconfig:"AUTONOVO_SENDGRID_FROM_EMAIL" default:"no-reply@autonovo.com.br"`
	FromName   string `envconfig:"AUTONOVO_SENDGRID_FROM_NAME" default:"AutoNovo"`
	AdminEmail string `envconfig:"AUTONOVO_SENDGRID_ADMIN_EMAIL" default:"moderacao@autonovo.com.br"`

	AccountApprovedTemplate string `envconfig:"AUTONOVO_SENDGRID_TEMPLATE_ACCOUNT_APPROVED" default:"d-conta-aprovada"`
	AdApprovedTemplate      string `envconfig:"AUTONOVO_SENDGRID_TEMPLATE_AD_APPROVED" default:"d-anuncio-aprovado"`
	AdminAlertTemplate      string `envconfig:"AUTONOVO_SENDGRID_TEMPLATE_ADMIN_ALERT" default:"d-alerta-admin"`
	DocumentStatusTemplate  string `envconfig:"AUTONOVO_SENDGRID_TEMPLATE_DOCUMENT_STATUS" default:"d-status-documentos"`
}

type ModerationConfig struct {
	// CountsCacheTTL is the freshness window for the pending-counts aggregate.
	CountsCacheTTL time.Duration `envconfig:"AUTONOVO_MODERATION_COUNTS_CACHE_TTL" default:"30s"`
	// RefreshInterval drives the background force-refresh of the aggregate.
	RefreshInterval time.Duration `envconfig:"AUTONOVO_MODERATION_REFRESH_INTERVAL" default:"60s"`
	RefreshLockTTL  time.Duration `envconfig:"AUTONOVO_MODERATION_REFRESH_LOCK_TTL" default:"55s"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"AUTONOVO_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"AUTONOVO_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"AUTONOVO_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	AnalyticsTopic        string `envconfig:"AUTONOVO_PUBSUB_ANALYTICS_TOPIC" default:"an-page-events"`
	AnalyticsSubscription string `envconfig:"AUTONOVO_PUBSUB_ANALYTICS_SUBSCRIPTION" default:"an-page-events-writer"`
}

type BigQueryConfig struct {
	Dataset         string `envconfig:"AUTONOVO_BIGQUERY_DATASET" default:"autonovo"`
	PageEventsTable string `envconfig:"AUTONOVO_BIGQUERY_PAGE_EVENTS_TABLE" default:"page_events"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
