package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Fleet    FleetConfig
	Tracker  TrackerConfig
	GPSD     GPSDConfig
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
	APIKey          string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains the delivery journal database configuration.
// An empty host disables the journal; the agent runs without durable audit.
type DatabaseConfig struct {
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

// FleetConfig contains the fleet backend API configuration
type FleetConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

// TrackerConfig contains tracking session tuning
type TrackerConfig struct {
	SampleIntervalMs int
	GeofenceRadiusM  float64
	PositionTimeoutS int
	HistoryLimit     int
	StatusTTLSeconds int
}

// GPSDConfig contains the gpsd connection configuration
type GPSDConfig struct {
	Host string
	Port int
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
