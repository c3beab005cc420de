// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads and validates the demo command configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"code.hybscloud.com/pfun"
	"code.hybscloud.com/pfun/internal/logging"
	"gopkg.in/yaml.v3"
)

// MaxFibonacci bounds the fibonacci index; the demo recursion is exponential.
const MaxFibonacci = 30

// Account is one set of credentials to validate.
type Account struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Config holds the demo command settings.
type Config struct {
	LogLevel  string    `yaml:"log_level"`
	LogFormat string    `yaml:"log_format"`
	Numbers   []int     `yaml:"numbers"`
	Fibonacci int       `yaml:"fibonacci"`
	Accounts  []Account `yaml:"accounts"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: logging.FormatJSON,
		Numbers:   []int{1, 2, 3, 4, 5},
		Fibonacci: 10,
		Accounts: []Account{
			{Username: "Testing", Password: ""},
			{Username: "Testing", Password: "Abc123"},
		},
	}
}

// Load reads a YAML file and validates it. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once, joined with [errors.Join].
func (c *Config) Validate() error {
	checks := []pfun.Validation{
		check(logging.ValidLevel(c.LogLevel), "log_level: unknown level %q", c.LogLevel),
		check(logging.ValidFormat(c.LogFormat), "log_format: want json or console, got %q", c.LogFormat),
		check(len(c.Numbers) > 0, "numbers: must not be empty"),
		check(c.Fibonacci >= 0 && c.Fibonacci <= MaxFibonacci, "fibonacci: %d out of range [0, %d]", c.Fibonacci, MaxFibonacci),
	}
	return pfun.MatchValidation(pfun.SequenceA(pfun.ValidationOf, checks),
		func(errs []pfun.Erased) error {
			joined := make([]error, len(errs))
			for i, e := range errs {
				joined[i] = e.(error)
			}
			return errors.Join(joined...)
		},
		func(pfun.Erased) error { return nil },
	)
}

func check(ok bool, format string, args ...any) pfun.Validation {
	if ok {
		return pfun.Success(struct{}{})
	}
	return pfun.Failure(fmt.Errorf(format, args...))
}
