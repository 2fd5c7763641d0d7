package config

// Config holds the application configuration.
type Config struct {
	AppIdentifier string  `yaml:"appIdentifier" validate:"required"`
	DataDir       string  `yaml:"dataDir"` // Replaces the platform data directory when set
	Logger        Logger  `yaml:"logger"`
	Server        Server  `yaml:"server"`
	Watcher       Watcher `yaml:"watcher"`
	Metrics       Metrics `yaml:"metrics"`
}

// Server hold the configuration for the Fiber server Config
type Server struct {
	PrintRoutes bool   `yaml:"show_routes"`
	Host        string `yaml:"host"`
	Port        uint32 `yaml:"port" validate:"required"`
}

// Logger holds the configuration for the app logging
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"omitempty,oneof=json text logfmt"`
}

// Watcher holds the configuration for the media root watcher
type Watcher struct {
	Enabled bool `yaml:"enabled"`
}

// Metrics holds the configuration for the prometheus endpoint
type Metrics struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path" validate:"omitempty,startswith=/"`
}
