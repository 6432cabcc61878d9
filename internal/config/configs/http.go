package configs

// HTTP defines configuration for the optional HTTP API. When Enabled is
// false the binary prints its report and exits without listening.
type HTTP struct {
	// Enabled starts the API server after the report. Defaults to false.
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
