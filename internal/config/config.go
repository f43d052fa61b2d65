package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	Issuer      string `mapstructure:"issuer"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

func (j JWTConfig) TTL() time.Duration {
	return time.Duration(j.ExpireHours) * time.Hour
}

type SecurityConfig struct {
	BcryptCost           int `mapstructure:"bcrypt_cost"`
	ResetTokenTTLMinutes int `mapstructure:"reset_token_ttl_minutes"`
}

func (s SecurityConfig) ResetTokenTTL() time.Duration {
	return time.Duration(s.ResetTokenTTLMinutes) * time.Minute
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type StoreConfig struct {
	SeedDemo bool `mapstructure:"seed_demo"`
}

type FamilyConfig struct {
	MaxParents int `mapstructure:"max_parents"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Security SecurityConfig `mapstructure:"security"`
	Log      LogConfig      `mapstructure:"log"`
	Store    StoreConfig    `mapstructure:"store"`
	Family   FamilyConfig   `mapstructure:"family"`
}

const envPrefix = "FB"

// devSecret is only accepted outside release mode.
const devSecret = "family-budget-secret-key"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("jwt.secret", devSecret)
	v.SetDefault("jwt.issuer", "family-budget")
	v.SetDefault("jwt.expire_hours", 24*7)
	v.SetDefault("security.bcrypt_cost", bcrypt.DefaultCost)
	v.SetDefault("security.reset_token_ttl_minutes", 30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", true)
	v.SetDefault("store.seed_demo", false)
	v.SetDefault("family.max_parents", 2)
}

// Load reads .env (if present), then the given yaml file (or ./config.yaml when
// path is empty; a missing default file is fine), then FB_* environment overrides.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode %q must be debug, release or test", c.Server.Mode))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	if c.Server.Mode == "release" && c.JWT.Secret == devSecret {
		errs = append(errs, errors.New("jwt.secret must be overridden in release mode"))
	}
	if c.JWT.ExpireHours <= 0 {
		errs = append(errs, errors.New("jwt.expire_hours must be positive"))
	}
	if c.Security.BcryptCost < bcrypt.MinCost || c.Security.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("security.bcrypt_cost must be within %d..%d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.Security.ResetTokenTTLMinutes <= 0 {
		errs = append(errs, errors.New("security.reset_token_ttl_minutes must be positive"))
	}
	if c.Family.MaxParents < 1 {
		errs = append(errs, errors.New("family.max_parents must be at least 1"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
