package geocoder

import "time"

type Config struct {
	BaseURL   string        `envconfig:"BASE_URL" default:"https://nominatim.openstreetmap.org"`
	UserAgent string        `envconfig:"USER_AGENT" default:"etheria/1.0"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"10s"`
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"720h"`
}
