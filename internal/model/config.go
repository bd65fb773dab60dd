package model

// DefaultQuantityPrecision is the number of decimal places quantities are
// rounded to after expression evaluation. Totals always round to 2.
const DefaultQuantityPrecision = 3

// Config holds application configuration (singleton). DefaultRate is the
// last rate the user entered; the add workflow reuses it when no rate is
// given, so the rate only has to be typed when it changes.
type Config struct {
	Key               string  `json:"key"`
	DefaultRate       float64 `json:"default_rate,omitempty"`
	QuantityPrecision int     `json:"quantity_precision"`
}

// SetKey sets the database key for this config.
func (c *Config) SetKey(key string) {
	c.Key = key
}

// GetKey returns the database key for this config.
func (c *Config) GetKey() string {
	return c.Key
}

// NewConfig creates a new config with default settings.
func NewConfig() *Config {
	return &Config{
		Key:               KeyConfig,
		QuantityPrecision: DefaultQuantityPrecision,
	}
}

// Precision returns the configured quantity precision, falling back to the
// default for configs persisted before the field existed.
func (c *Config) Precision() int {
	if c.QuantityPrecision <= 0 {
		return DefaultQuantityPrecision
	}
	return c.QuantityPrecision
}
