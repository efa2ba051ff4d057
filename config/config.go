package config

import (
	"fmt"
	"strings"
	"time"

	"zippay/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AuthConfig struct {
	// PINHash is the Argon2id hash of the operator PIN (see cmd/pinhash).
	// Required; Load rejects a configuration without it.
	PINHash string `mapstructure:"pin_hash"`
}

// LedgerConfig holds the business thresholds and identities of the
// payment network.
type LedgerConfig struct {
	WalletCap        float64       `mapstructure:"wallet_cap"`
	LoadMax          float64       `mapstructure:"load_max"`
	PaymentLimit     float64       `mapstructure:"payment_limit"`
	OfflineCap       int           `mapstructure:"offline_cap"`
	ReloadThreshold  float64       `mapstructure:"reload_threshold"`
	ReloadTarget     float64       `mapstructure:"reload_target"`
	EmergencyFeeRate float64       `mapstructure:"emergency_fee_rate"`
	ReloadDelay      time.Duration `mapstructure:"reload_delay"`
	InitialBank      float64       `mapstructure:"initial_bank_balance"`
	MerchantName     string        `mapstructure:"merchant_name"`
	UserLabel        string        `mapstructure:"user_label"`
	SnapshotDepth    int           `mapstructure:"snapshot_depth"`
}

// Limits converts the configured thresholds into domain limits.
func (l LedgerConfig) Limits() domain.Limits {
	return domain.Limits{
		WalletCap:        decimal.NewFromFloat(l.WalletCap),
		LoadMax:          decimal.NewFromFloat(l.LoadMax),
		PaymentLimit:     decimal.NewFromFloat(l.PaymentLimit),
		OfflineCap:       l.OfflineCap,
		ReloadThreshold:  decimal.NewFromFloat(l.ReloadThreshold),
		ReloadTarget:     decimal.NewFromFloat(l.ReloadTarget),
		EmergencyFeeRate: decimal.NewFromFloat(l.EmergencyFeeRate),
	}
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ZP_.
// Nested keys use underscore: ZP_DATABASE_HOST, ZP_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "zippay")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "zippay")
	v.SetDefault("auth.pin_hash", "")
	v.SetDefault("ledger.wallet_cap", 500)
	v.SetDefault("ledger.load_max", 500)
	v.SetDefault("ledger.payment_limit", 200)
	v.SetDefault("ledger.offline_cap", 5)
	v.SetDefault("ledger.reload_threshold", 50)
	v.SetDefault("ledger.reload_target", 200)
	v.SetDefault("ledger.emergency_fee_rate", 0.04)
	v.SetDefault("ledger.reload_delay", "1s")
	v.SetDefault("ledger.initial_bank_balance", 10000)
	v.SetDefault("ledger.merchant_name", "Local Merchant")
	v.SetDefault("ledger.user_label", "ZipPay User")
	v.SetDefault("ledger.snapshot_depth", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: ZP_DATABASE_HOST -> database.host
	v.SetEnvPrefix("ZP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate rejects configurations that cannot serve sessions. There are no
// usable defaults for these; an empty PIN hash would turn every login into
// an Argon2 decode failure.
func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: jwt.secret is required (set ZP_JWT_SECRET)")
	}
	if c.Auth.PINHash == "" {
		return fmt.Errorf("config: auth.pin_hash is required (set ZP_AUTH_PIN_HASH, see cmd/pinhash)")
	}
	return nil
}
