package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig        `yaml:"server"`
	Database DatabaseConfig      `yaml:"database"`
	Notify   NotifyConfig        `yaml:"notify"`
	SMS      AfricaTalkingConfig `yaml:"sms"`
	Email    EmailConfig         `yaml:"email"`
}

type ServerConfig struct {
	Addr    string `yaml:"addr"`
	GinMode string `yaml:"gin_mode"`
}

// DatabaseConfig selects one of the supported gorm drivers. For sqlite,
// Name is the file name or DSN.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Params   string `yaml:"params"`
	LogLevel string `yaml:"log_level"`
}

type NotifyConfig struct {
	Email bool `yaml:"email"`
	SMS   bool `yaml:"sms"`
}

type AfricaTalkingConfig struct {
	Username string `yaml:"username"`
	APIKey   string `yaml:"api_key"`
	SMSURL   string `yaml:"sms_url"`
	SenderID string `yaml:"sender_id"`
}

type EmailConfig struct {
	AWSAccessKeyID     string `yaml:"aws_access_key_id"`
	AWSSecretAccessKey string `yaml:"aws_secret_access_key"`
	AWSRegion          string `yaml:"aws_region"`
	SenderEmail        string `yaml:"sender_email"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:    ":8080",
			GinMode: "release",
		},
		Database: DatabaseConfig{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     "5432",
			User:     "test",
			Password: "test",
			Name:     "test",
			LogLevel: "warn",
		},
		SMS: AfricaTalkingConfig{
			SMSURL:   "https://api.sandbox.africastalking.com/version1/messaging", // Sandbox URL
			SenderID: "AFRICASTKNG",
		},
		Email: EmailConfig{
			AWSRegion: "us-east-1",
		},
	}
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. An empty path or a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Server.Addr == "" {
		return errors.New("server address is empty")
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Server.Addr = getEnvOrDefault("SERVER_ADDR", cfg.Server.Addr)
	cfg.Server.GinMode = getEnvOrDefault("GIN_MODE", cfg.Server.GinMode)

	cfg.Database.Driver = getEnvOrDefault("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.Host = getEnvOrDefault("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnvOrDefault("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnvOrDefault("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnvOrDefault("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = getEnvOrDefault("DB_NAME", cfg.Database.Name)
	cfg.Database.Params = getEnvOrDefault("DB_PARAMS", cfg.Database.Params)
	cfg.Database.LogLevel = getEnvOrDefault("DB_LOG_LEVEL", cfg.Database.LogLevel)

	var err error
	if cfg.Notify.Email, err = getBoolEnv("NOTIFY_EMAIL", cfg.Notify.Email); err != nil {
		return err
	}
	if cfg.Notify.SMS, err = getBoolEnv("NOTIFY_SMS", cfg.Notify.SMS); err != nil {
		return err
	}

	cfg.SMS.Username = getEnvOrDefault("AT_USERNAME", cfg.SMS.Username)
	cfg.SMS.APIKey = getEnvOrDefault("AT_API_KEY", cfg.SMS.APIKey)
	cfg.SMS.SMSURL = getEnvOrDefault("AT_SMS_URL", cfg.SMS.SMSURL)
	cfg.SMS.SenderID = getEnvOrDefault("AT_SENDER_ID", cfg.SMS.SenderID)

	cfg.Email.AWSAccessKeyID = getEnvOrDefault("AWS_ACCESS_KEY_ID", cfg.Email.AWSAccessKeyID)
	cfg.Email.AWSSecretAccessKey = getEnvOrDefault("AWS_SECRET_ACCESS_KEY", cfg.Email.AWSSecretAccessKey)
	cfg.Email.AWSRegion = getEnvOrDefault("AWS_REGION", cfg.Email.AWSRegion)
	cfg.Email.SenderEmail = getEnvOrDefault("AWS_SENDER_ADDRESS", cfg.Email.SenderEmail)

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
