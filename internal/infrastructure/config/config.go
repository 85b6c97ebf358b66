package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	NotifierSES     = "ses"
	NotifierSNS     = "sns"
	NotifierWebhook = "webhook"
	NotifierMock    = "mock"
)

// Config is the service configuration. Every key can be set from the
// environment by upper-casing it and replacing dots with underscores, e.g.
// notifier.ses.from -> NOTIFIER_SES_FROM.
type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
	AWS      AWSConfig      `mapstructure:"aws"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Lock     LockConfig     `mapstructure:"lock"`
	Notifier NotifierConfig `mapstructure:"notifier"`
}

type HTTPConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	// Endpoint overrides SES and SNS, e.g. a localstack URL.
	Endpoint string `mapstructure:"endpoint"`
}

type DynamoDBConfig struct {
	Endpoint           string `mapstructure:"endpoint"`
	QuoteRequestsTable string `mapstructure:"quote_requests_table"`
}

// RedisConfig is optional. An empty Address selects the in-process lock.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LockConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type NotifierConfig struct {
	Kind    string        `mapstructure:"kind"`
	Timeout time.Duration `mapstructure:"timeout"`
	SES     struct {
		From string `mapstructure:"from"`
		To   string `mapstructure:"to"`
	} `mapstructure:"ses"`
	SNS struct {
		TopicARN string `mapstructure:"topic_arn"`
	} `mapstructure:"sns"`
	Webhook struct {
		URL   string `mapstructure:"url"`
		Token string `mapstructure:"token"`
	} `mapstructure:"webhook"`
}

var defaults = map[string]interface{}{
	"http.port":                     8080,
	"log.level":                     "info",
	"log.format":                    "json",
	"aws.region":                    "us-east-1",
	"aws.access_key_id":             "local",
	"aws.secret_access_key":         "local",
	"aws.endpoint":                  "",
	"dynamodb.endpoint":             "",
	"dynamodb.quote_requests_table": "quote_requests",
	"redis.address":                 "",
	"redis.password":                "",
	"redis.db":                      0,
	"lock.ttl":                      "2m",
	"notifier.kind":                 NotifierMock,
	"notifier.timeout":              "10s",
	"notifier.ses.from":             "",
	"notifier.ses.to":               "",
	"notifier.sns.topic_arn":        "",
	"notifier.webhook.url":          "",
	"notifier.webhook.token":        "",
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Notifier.Kind = strings.ToLower(strings.TrimSpace(cfg.Notifier.Kind))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port out of range: %d", c.HTTP.Port)
	}
	if c.DynamoDB.QuoteRequestsTable == "" {
		return fmt.Errorf("dynamodb.quote_requests_table is required")
	}
	if c.Lock.TTL <= 0 {
		return fmt.Errorf("lock.ttl must be positive")
	}
	if c.Notifier.Timeout <= 0 {
		return fmt.Errorf("notifier.timeout must be positive")
	}
	if c.Lock.TTL <= c.Notifier.Timeout {
		return fmt.Errorf("lock.ttl (%s) must be longer than notifier.timeout (%s)", c.Lock.TTL, c.Notifier.Timeout)
	}

	switch c.Notifier.Kind {
	case NotifierMock:
	case NotifierSES:
		if c.Notifier.SES.From == "" || c.Notifier.SES.To == "" {
			return fmt.Errorf("notifier.ses.from and notifier.ses.to are required for the ses notifier")
		}
	case NotifierSNS:
		if c.Notifier.SNS.TopicARN == "" {
			return fmt.Errorf("notifier.sns.topic_arn is required for the sns notifier")
		}
	case NotifierWebhook:
		if c.Notifier.Webhook.URL == "" {
			return fmt.Errorf("notifier.webhook.url is required for the webhook notifier")
		}
	default:
		return fmt.Errorf("unknown notifier.kind %q", c.Notifier.Kind)
	}
	return nil
}

// UseRedis reports whether the submission lock is shared through Redis.
func (c *Config) UseRedis() bool {
	return strings.TrimSpace(c.Redis.Address) != ""
}
