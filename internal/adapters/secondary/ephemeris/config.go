package ephemeris

import "time"

type Config struct {
	BaseURL    string        `envconfig:"BASE_URL" default:"http://localhost:8088"`
	ApiVersion string        `envconfig:"VERSION" default:"v1"`
	APIKey     string        `envconfig:"API_KEY"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"30s"`
	SkipSSL    string        `envconfig:"SKIP_SSL"`
}

func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL == "true" || c.SkipSSL == "1" || c.SkipSSL == "True"
}
