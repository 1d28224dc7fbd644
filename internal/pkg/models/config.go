package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Nextmv   NextmvConfig
	Mapbox   MapboxConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// AuthConfig contains the operator login credentials.
// PasswordHash is a bcrypt hash, never the plaintext password.
type AuthConfig struct {
	OperatorEmail string
	PasswordHash  string
}

// NextmvConfig contains the Nextmv cloud API configuration.
// APIKey has no baked-in fallback; startup fails without it.
type NextmvConfig struct {
	BaseURL       string
	APIKey        string
	ApplicationID string
	PollInterval  int // in seconds
	PollTimeout   int // in seconds
}

// MapboxConfig contains the Mapbox Directions API configuration
type MapboxConfig struct {
	BaseURL     string
	AccessToken string
	Profile     string
	CacheTTL    int // in seconds
}

// NewRelicConfig contains New Relic monitoring configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
