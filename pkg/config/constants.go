package config

// EnvPrefix namespaces every environment variable consumed by the service.
const EnvPrefix = "DCF"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvDBDSN  = "DCF_DB_DSN"
	EnvDBHost = "DCF_DB_HOST"
	EnvDBUser = "DCF_DB_USER"
	EnvDBName = "DCF_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
