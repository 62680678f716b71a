package config

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/Soulverse-Ecosystem/status-check/internal/classify"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

type Config struct {
	EndpointsFile string `mapstructure:"endpoints_file"`
	StateFile     string `mapstructure:"state_file"`
	ArtifactFile  string `mapstructure:"artifact_file"`

	Server   ServerConfig   `mapstructure:"server"`
	Probe    ProbeConfig    `mapstructure:"probe"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Classify ClassifyConfig `mapstructure:"classify"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig applies to the serve subcommand only; the run pass never
// opens a listener.
type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	RateLimitPerMin int    `mapstructure:"rate_limit_per_min"`
	RateLimitBurst  int    `mapstructure:"rate_limit_burst"`
}

type ProbeConfig struct {
	Timeout     string `mapstructure:"timeout"`
	Concurrency int    `mapstructure:"concurrency"`
	DiagnoseDNS bool   `mapstructure:"diagnose_dns"`
}

func (p ProbeConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(p.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// AuthConfig holds process-wide static credentials attached to every probe.
type AuthConfig struct {
	APIKeyHeader  string `mapstructure:"api_key_header"`
	APIKey        string `mapstructure:"api_key"`
	BearerToken   string `mapstructure:"bearer_token"`
	Authorization string `mapstructure:"authorization"`
}

// Headers assembles the static header set. Bearer token wins over a raw
// Authorization value when both are set.
func (a AuthConfig) Headers() http.Header {
	h := http.Header{}
	if a.APIKeyHeader != "" && a.APIKey != "" {
		h.Set(a.APIKeyHeader, a.APIKey)
	}
	if a.Authorization != "" {
		h.Set("Authorization", a.Authorization)
	}
	if a.BearerToken != "" {
		h.Set("Authorization", "Bearer "+a.BearerToken)
	}
	if len(h) == 0 {
		return nil
	}
	return h
}

type NotifyConfig struct {
	WebhookURL   string `mapstructure:"webhook_url"`
	SlackWebhook string `mapstructure:"slack_webhook"`
}

// ClassifyConfig overrides the operational status sets per method group.
// Entries are "200-299" ranges or single codes; empty means the stock table.
type ClassifyConfig struct {
	ReadOperational  []string `mapstructure:"read_operational"`
	WriteOperational []string `mapstructure:"write_operational"`
}

func (c ClassifyConfig) Policy() (classify.Policy, error) {
	p := classify.Default()
	if len(c.ReadOperational) > 0 {
		ranges, err := classify.ParseRanges(c.ReadOperational)
		if err != nil {
			return p, fmt.Errorf("classify.read_operational: %w", err)
		}
		p.ReadOperational = ranges
	}
	if len(c.WriteOperational) > 0 {
		ranges, err := classify.ParseRanges(c.WriteOperational)
		if err != nil {
			return p, fmt.Errorf("classify.write_operational: %w", err)
		}
		p.WriteOperational = ranges
	}
	return p, nil
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Dir     string `mapstructure:"dir"`
	Console bool   `mapstructure:"console"`
}

// Load reads configuration from path (or ./config.yaml when empty) with
// environment variable overrides, then validates it.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("endpoints_file", "endpoints.yaml")
	v.SetDefault("state_file", "status/state.json")
	v.SetDefault("artifact_file", "status/status.json")
	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("server.rate_limit_per_min", 120)
	v.SetDefault("server.rate_limit_burst", 60)
	v.SetDefault("probe.timeout", "10s")
	v.SetDefault("probe.concurrency", 1)
	v.SetDefault("logging.level", LogLevelInfo)
	v.SetDefault("logging.console", true)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("STATUSCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// no config file: defaults plus environment
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.EndpointsFile, validation.Required),
		validation.Field(&c.StateFile, validation.Required),
		validation.Field(&c.ArtifactFile, validation.Required),
		validation.Field(&c.Probe, validation.By(func(value interface{}) error {
			pc, ok := value.(ProbeConfig)
			if !ok {
				return validation.NewError("validation_invalid_type", "must be a ProbeConfig")
			}
			return validation.ValidateStruct(&pc,
				validation.Field(&pc.Timeout, validation.Required, validation.By(validateDuration)),
				validation.Field(&pc.Concurrency, validation.Min(1)),
			)
		})),
		validation.Field(&c.Notify, validation.By(func(value interface{}) error {
			nc, ok := value.(NotifyConfig)
			if !ok {
				return validation.NewError("validation_invalid_type", "must be a NotifyConfig")
			}
			return validation.ValidateStruct(&nc,
				validation.Field(&nc.WebhookURL, validation.By(validateOptionalHTTPURL)),
				validation.Field(&nc.SlackWebhook, validation.By(validateOptionalHTTPURL)),
			)
		})),
		validation.Field(&c.Classify, validation.By(func(value interface{}) error {
			cc, ok := value.(ClassifyConfig)
			if !ok {
				return validation.NewError("validation_invalid_type", "must be a ClassifyConfig")
			}
			_, err := cc.Policy()
			return err
		})),
		validation.Field(&c.Logging, validation.By(func(value interface{}) error {
			lc, ok := value.(LoggingConfig)
			if !ok {
				return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
			}
			return validation.ValidateStruct(&lc,
				validation.Field(&lc.Level, validation.Required,
					validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)),
			)
		})),
	)
}

func validateDuration(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return validation.NewError("validation_invalid_duration", "must be a valid duration (e.g., 10s)")
	}
	if d <= 0 {
		return validation.NewError("validation_invalid_duration", "must be positive")
	}
	return nil
}

func validateOptionalHTTPURL(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	return validateHTTPURL(s)
}

func validateHTTPURL(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}
	u, err := url.Parse(s)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return validation.NewError("validation_invalid_scheme", "URL must use http or https scheme")
	}
	if u.Host == "" {
		return validation.NewError("validation_missing_host", "URL must have a host")
	}
	return nil
}
