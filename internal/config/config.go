package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envTestMode = "TAKA8RIE_TEST_MODE"
	envLanguage = "TAKA8RIE_LANG"
	envDebug    = "TAKA8RIE_DEBUG"
)

// Config holds the startup inputs, read once before the UI starts
type Config struct {
	// TestMode forces the celebration regardless of the date
	TestMode bool
	// TestModeSet reports whether TestMode came from a flag or the environment
	TestModeSet bool
	// Language overrides the host locale when not empty
	Language string
	// Debug enables the development logger
	Debug bool
}

// Load reads configuration from command-line args and environment variables.
// Flags take precedence over the environment.
func Load(args []string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	testMode, testModeSet, err := getEnvBool(envTestMode)
	if err != nil {
		return nil, err
	}
	debug, _, err := getEnvBool(envDebug)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		TestMode:    testMode,
		TestModeSet: testModeSet,
		Language:    getEnv(envLanguage, ""),
		Debug:       debug,
	}

	flags := flag.NewFlagSet("taka8rie", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVar(&cfg.TestMode, "test", cfg.TestMode, "show the birthday celebration regardless of the date")
	flags.StringVar(&cfg.Language, "lang", cfg.Language, "display language tag, e.g. ja or en-US")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable development logging")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "test" {
			cfg.TestModeSet = true
		}
	})

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string) (value bool, set bool, err error) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false, nil
	}
	value, err = strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return value, true, nil
}
