package kafka

import "strings"

// Config for the readings event producer.
type Config struct {
	Brokers          string `envconfig:"BROKERS"` // "broker1:9092,broker2:9092"
	Topic            string `envconfig:"TOPIC" default:"readings.created"`
	SecurityProtocol string `envconfig:"SECURITY_PROTOCOL"` // "SASL_SSL", "SASL_PLAINTEXT", "PLAINTEXT"
	SASLMechanism    string `envconfig:"SASL_MECHANISM"`    // "PLAIN", "SCRAM-SHA-256"
	SASLUsername     string `envconfig:"SASL_USERNAME"`
	SASLPassword     string `envconfig:"SASL_PASSWORD"`
}

// GetBrokers returns the broker list parsed from the comma-separated string.
func (c *Config) GetBrokers() []string {
	if c.Brokers == "" {
		return []string{"localhost:9092"}
	}
	return strings.Split(c.Brokers, ",")
}

// Enabled reports whether a broker list was configured.
func (c *Config) Enabled() bool {
	return c.Brokers != ""
}
