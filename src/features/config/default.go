package config

var defaultConfig = Config{
	AppIdentifier: "com.jadwalsholat.display",
	DataDir:       "",
	Logger: Logger{
		Enabled: true,
		Level:   "info",
		Format:  "text",
	},
	Server: Server{
		PrintRoutes: false,
		Host:        "127.0.0.1",
		Port:        3535,
	},
	Watcher: Watcher{
		Enabled: false,
	},
	Metrics: Metrics{
		Enabled: true,
		Path:    "/metrics",
	},
}

// createDefaultConfig returns a copy of the default configuration.
func createDefaultConfig() *Config {
	cfg := defaultConfig
	return &cfg
}
