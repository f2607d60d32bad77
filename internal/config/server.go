package config

// ServerConfig holds settings for the local stub storefront.
type ServerConfig struct {
	Port string
}

// LoadServerConfig reads the stub storefront settings via getenv.
func LoadServerConfig(getenv func(string) string) ServerConfig {
	port := getenv("STUB_PORT")
	if port == "" {
		port = "8080"
	}

	return ServerConfig{
		Port: port,
	}
}
