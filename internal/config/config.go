package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	MySQLHost string `env:"MYSQL_HOST" envDefault:"mysql"`
	MySQLPort string `env:"MYSQL_PORT" envDefault:"3306"`
	MySQLDB   string `env:"MYSQL_DB"   envDefault:"sacco"`
	MySQLUser string `env:"MYSQL_USER" envDefault:"sacco"`
	MySQLPass string `env:"MYSQL_PASS" envDefault:"sacco"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"redis:6379"`
	RedisDB   int    `env:"REDIS_DB"   envDefault:"0"`

	IdempTTLSecs int `env:"IDEMPOTENCY_TTL_SECONDS" envDefault:"300"`

	// Lending policy constants. Rates and multipliers stay strings in the
	// environment and are parsed to decimals, never floats.
	LoanAnnualRate      string `env:"LOAN_ANNUAL_RATE"       envDefault:"0.12"`
	LoanLimitMultiplier string `env:"LOAN_LIMIT_MULTIPLIER"  envDefault:"3"`
	LoanDueIntervalDays int    `env:"LOAN_DUE_INTERVAL_DAYS" envDefault:"30"`
}

func Load() (*Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if _, err := c.AnnualRate(); err != nil {
		return err
	}
	if _, err := c.LimitMultiplier(); err != nil {
		return err
	}
	if c.LoanDueIntervalDays <= 0 {
		return errors.New("LOAN_DUE_INTERVAL_DAYS must be positive")
	}
	return nil
}

func (c *Config) AnnualRate() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.LoanAnnualRate)
	if err != nil || d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid LOAN_ANNUAL_RATE %q", c.LoanAnnualRate)
	}
	return d, nil
}

func (c *Config) LimitMultiplier() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.LoanLimitMultiplier)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("invalid LOAN_LIMIT_MULTIPLIER %q", c.LoanLimitMultiplier)
	}
	return d, nil
}

func (c *Config) DueInterval() time.Duration {
	return time.Duration(c.LoanDueIntervalDays) * 24 * time.Hour
}

func (c *Config) IdempTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
