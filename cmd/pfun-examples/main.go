// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// pfun-examples runs small programs built with pfun.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"code.hybscloud.com/pfun/internal/config"
	"code.hybscloud.com/pfun/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pfun-examples", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file (default: built-in settings)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	logFormat := fs.String("log-format", "", "Log format: json or console (overrides config)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "pfun-examples - run small programs built with pfun\n\n")
		fmt.Fprintf(stderr, "Usage: pfun-examples [flags] <command> [args]\n\n")
		fmt.Fprintf(stderr, "Commands:\n")
		fmt.Fprintf(stderr, "  fun                 Sum and product folds, fibonacci via Fix and FixT\n")
		fmt.Fprintf(stderr, "  validate            Validate the accounts listed in the configuration\n")
		fmt.Fprintf(stderr, "  op NAME TYPE A [B]  Apply an operator; TYPE is int, float or bool\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	log := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return fmt.Errorf("missing command")
	}
	log.Debug().Str("command", rest[0]).Strs("args", rest[1:]).Msg("running")

	switch rest[0] {
	case "fun":
		return runFun(stdout, log, cfg)
	case "validate":
		return runValidate(stdout, log, cfg)
	case "op":
		return runOp(stdout, log, rest[1:])
	}
	fs.Usage()
	return fmt.Errorf("unknown command %q", rest[0])
}
