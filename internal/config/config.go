// Package config handles configuration for the POINT server, including
// defaults, an optional YAML overlay and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings for the POINT server.
type Config struct {
	// HTTPAddr is the bind address for the Connect API, realtime feed and metrics.
	HTTPAddr string `yaml:"http_addr"`

	// DBPath is the SQLite database file.
	DBPath string `yaml:"db_path"`

	// JWTSecret signs session tokens (HS256). Do not use the default in prod.
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenDuration time.Duration `yaml:"token_duration"`

	// VaultMasterKey seals custodial wallet keys at rest.
	VaultMasterKey string `yaml:"vault_master_key"`

	// TreasuryKey is the hex encoded private key of the fee payer / treasury.
	// Empty generates an ephemeral key, which only makes sense with the memory ledger.
	TreasuryKey string `yaml:"treasury_key"`

	// AssetID names the POINT token on the ledger.
	AssetID string `yaml:"asset_id"`

	// LedgerRPCURL points at a ledger node. Empty runs the in-process memory ledger.
	LedgerRPCURL string `yaml:"ledger_rpc_url"`

	// RemoteTimeout bounds every ledger and store call.
	RemoteTimeout time.Duration `yaml:"remote_timeout"`

	// AdminStudentIDs get the admin role on registration.
	AdminStudentIDs []string `yaml:"admin_student_ids"`

	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`

	// KRWPerUSD converts USD purchases into POINT.
	KRWPerUSD int64 `yaml:"krw_per_usd"`

	Graph GraphConfig `yaml:"graph"`
}

// GraphConfig describes the optional Neo4j friend graph.
type GraphConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: secrets here are insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.DBPath = "./data/point.db"
	c.JWTSecret = "dev-secret-change-me"
	c.TokenDuration = 24 * time.Hour
	c.VaultMasterKey = "dev-vault-key-change-me"
	c.AssetID = "POINT"
	c.RemoteTimeout = 15 * time.Second
	c.RateLimitRPS = 10
	c.RateLimitBurst = 20
	c.KRWPerUSD = 1300
}

// Load builds a Config by applying defaults, then the YAML file at path (if
// non-empty) and finally environment variables.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.HTTPAddr, "HTTP_ADDR")
	setString(&c.DBPath, "DB_PATH")
	setString(&c.JWTSecret, "JWT_SECRET")
	setString(&c.VaultMasterKey, "VAULT_MASTER_KEY")
	setString(&c.TreasuryKey, "TREASURY_KEY")
	setString(&c.AssetID, "ASSET_ID")
	setString(&c.LedgerRPCURL, "LEDGER_RPC_URL")
	setString(&c.Graph.URI, "NEO4J_URI")
	setString(&c.Graph.Database, "NEO4J_DATABASE")
	setString(&c.Graph.Username, "NEO4J_USERNAME")
	setString(&c.Graph.Password, "NEO4J_PASSWORD")

	if v := os.Getenv("ADMIN_STUDENT_IDS"); v != "" {
		c.AdminStudentIDs = splitList(v)
	}

	var errs []error
	if v := os.Getenv("TOKEN_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		errs = append(errs, wrapEnv("TOKEN_DURATION", err))
		c.TokenDuration = d
	}
	if v := os.Getenv("REMOTE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		errs = append(errs, wrapEnv("REMOTE_TIMEOUT", err))
		c.RemoteTimeout = d
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		errs = append(errs, wrapEnv("RATE_LIMIT_RPS", err))
		c.RateLimitRPS = f
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		errs = append(errs, wrapEnv("RATE_LIMIT_BURST", err))
		c.RateLimitBurst = n
	}
	if v := os.Getenv("KRW_PER_USD"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		errs = append(errs, wrapEnv("KRW_PER_USD", err))
		c.KRWPerUSD = n
	}
	return errors.Join(errs...)
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http_addr is required"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("db_path is required"))
	}
	if len(c.JWTSecret) < 16 {
		errs = append(errs, errors.New("jwt_secret must be at least 16 characters"))
	}
	if len(c.VaultMasterKey) < 16 {
		errs = append(errs, errors.New("vault_master_key must be at least 16 characters"))
	}
	if c.RemoteTimeout <= 0 {
		errs = append(errs, errors.New("remote_timeout must be positive"))
	}
	if c.LedgerRPCURL != "" && c.TreasuryKey == "" {
		errs = append(errs, errors.New("treasury_key is required with an external ledger"))
	}
	if c.KRWPerUSD <= 0 {
		errs = append(errs, errors.New("krw_per_usd must be positive"))
	}
	return errors.Join(errs...)
}

// IsAdmin reports whether studentID is configured as an administrator.
func (c *Config) IsAdmin(studentID string) bool {
	for _, id := range c.AdminStudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func wrapEnv(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("invalid %s: %w", key, err)
}
