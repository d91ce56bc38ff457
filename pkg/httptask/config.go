package httptask

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Config describes how a Client sends requests. Zero values mean "no base
// URL", "no timeout", "no extra headers" and "no rate limit".
type Config struct {
	BaseURL string
	Timeout time.Duration
	Headers map[string]string
	// RateLimit is the number of requests per second
	RateLimit float64
	Burst     int
}

// LoadConfig parses YAML such as
//
//	baseURL: https://api.example.com
//	timeout: 5s          # or 5000, read as milliseconds
//	headers:
//	  Accept: application/json
//	rateLimit: "10"
//	burst: 2
func LoadConfig(data []byte) (Config, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, errors.Wrap(err, "config contains invalid YAML")
	}
	return ConfigFromMap(raw)
}

func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not read config %s", path)
	}
	return LoadConfig(data)
}

// ConfigFromMap builds a Config from loosely typed values, as produced by
// YAML or environment lookups.
func ConfigFromMap(raw map[string]interface{}) (Config, error) {
	var (
		cfg Config
		err error
	)

	if v, ok := raw["baseURL"]; ok {
		if cfg.BaseURL, err = cast.ToStringE(v); err != nil {
			return Config{}, errors.Wrap(err, "baseURL")
		}
	}
	if v, ok := raw["timeout"]; ok {
		if cfg.Timeout, err = toDuration(v); err != nil {
			return Config{}, errors.Wrap(err, "timeout")
		}
	}
	if v, ok := raw["headers"]; ok {
		if cfg.Headers, err = cast.ToStringMapStringE(v); err != nil {
			return Config{}, errors.Wrap(err, "headers")
		}
	}
	if v, ok := raw["rateLimit"]; ok {
		if cfg.RateLimit, err = cast.ToFloat64E(v); err != nil {
			return Config{}, errors.Wrap(err, "rateLimit")
		}
	}
	if v, ok := raw["burst"]; ok {
		if cfg.Burst, err = cast.ToIntE(v); err != nil {
			return Config{}, errors.Wrap(err, "burst")
		}
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Timeout < 0 {
		return errors.New("timeout must be 0 or greater")
	}
	if c.RateLimit < 0 {
		return errors.New("rateLimit must be 0 or greater")
	}
	if c.Burst < 0 {
		return errors.New("burst must be 0 or greater")
	}
	return nil
}

// bare numbers are milliseconds
func toDuration(v interface{}) (time.Duration, error) {
	switch v.(type) {
	case int, int64, uint64, float64:
		ms, err := cast.ToInt64E(v)
		return time.Duration(ms) * time.Millisecond, err
	}
	return cast.ToDurationE(v)
}
