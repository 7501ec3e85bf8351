package datadog

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/compute-logger/compute-logger-go/pkg/log"
)

// DefaultSource is used when a Config leaves Source empty.
const DefaultSource = "go"

// Config holds the static envelope tags, typically loaded from YAML:
//
//	source: go
//	service: billing
//	hostname: web-1
//	tags:
//	  - env:prod
//	  - team:payments
type Config struct {
	Source   string `yaml:"source"`
	Tags     Tags   `yaml:"tags"`
	Hostname string `yaml:"hostname"`
	Service  string `yaml:"service"`
}

// Tags is the ddtags value. In YAML it may be a single string or a list
// of key:value strings, which are joined with commas.
type Tags string

// UnmarshalYAML accepts either a scalar or a sequence of scalars.
func (t *Tags) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*t = Tags(strings.Join(list, ","))
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*t = Tags(s)
	return nil
}

// ApplyDefaults fills an empty Source with DefaultSource and an empty
// Hostname with the machine's host name.
func (c *Config) ApplyDefaults() {
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if c.Hostname == "" {
		if h, err := os.Hostname(); err == nil {
			c.Hostname = h
		}
	}
}

// New builds a decorator from the configuration.
func (c Config) New(nested log.Logger, opts ...Option) *Log {
	return New(c.Source, string(c.Tags), c.Hostname, c.Service, nested, opts...)
}

// ConfigError provides details about a configuration loading error.
type ConfigError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// ParseConfig parses a configuration from YAML bytes.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}
	return &cfg, nil
}

// LoadConfig loads a configuration from a file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		if ce, ok := err.(*ConfigError); ok {
			ce.File = path
		}
		return nil, err
	}
	return cfg, nil
}
