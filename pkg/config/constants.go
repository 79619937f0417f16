package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names so the
// prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "AUTONOVO_APP_ENV"
	EnvPort     = "AUTONOVO_APP_PORT"
	EnvDBDSN    = "AUTONOVO_DB_DSN"
	EnvDBHost   = "AUTONOVO_DB_HOST"
	EnvDBUser   = "AUTONOVO_DB_USER"
	EnvDBName   = "AUTONOVO_DB_NAME"
	EnvRedisURL = "AUTONOVO_REDIS_URL"

	EnvJWTSecret = "AUTONOVO_JWT_SECRET"
	EnvJWTIssuer = "AUTONOVO_JWT_ISSUER"

	EnvSendgridAPIKey = "AUTONOVO_SENDGRID_API_KEY"

	EnvGCPProjectID = "AUTONOVO_GCP_PROJECT_ID"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
