package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the settings of the demo binary.
type Config struct {
	FetchDelay     time.Duration
	GetDataDelay   time.Duration
	CallbackDelay  time.Duration
	MessageDelay   time.Duration
	ScrollDebounce time.Duration
	AcceptedID     int
	LogLevel       string
	LogFilePath    string
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		FetchDelay:     2000 * time.Millisecond,
		GetDataDelay:   3000 * time.Millisecond,
		CallbackDelay:  4000 * time.Millisecond,
		MessageDelay:   2000 * time.Millisecond,
		ScrollDebounce: 100 * time.Millisecond,
		AcceptedID:     1,
		LogLevel:       "info",
	}
}

// Load reads configPath, if it exists, into the environment and builds
// a Config from the environment on top of Default.
// Variables already present in the environment win over the file.
//
// Delays and ACCEPTED_ID must be positive: the fetch constructors read
// a zero as "use the default".
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err == nil {
		if err := godotenv.Load(configPath); err != nil {
			return nil, fmt.Errorf("loading %s: %w", configPath, err)
		}
	} else {
		logrus.WithFields(logrus.Fields{
			"function": "Load",
			"path":     configPath,
		}).Debug("Config file not found, using environment only")
	}

	cfg := Default()

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"FETCH_DELAY_MS", &cfg.FetchDelay},
		{"GETDATA_DELAY_MS", &cfg.GetDataDelay},
		{"CALLBACK_DELAY_MS", &cfg.CallbackDelay},
		{"MESSAGE_DELAY_MS", &cfg.MessageDelay},
		{"SCROLL_DEBOUNCE_MS", &cfg.ScrollDebounce},
	}

	for _, d := range durations {
		if err := lookupMillis(d.key, d.dst); err != nil {
			return nil, err
		}
	}

	if err := lookupInt("ACCEPTED_ID", &cfg.AcceptedID); err != nil {
		return nil, err
	}
	if cfg.AcceptedID <= 0 {
		return nil, fmt.Errorf("ACCEPTED_ID must be positive: %d", cfg.AcceptedID)
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	cfg.LogFilePath = os.Getenv("LOG_FILE_PATH")

	return cfg, nil
}

func lookupInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		logrus.WithFields(logrus.Fields{
			"function": "Load",
			"key":      key,
			"default":  *dst,
		}).Debug("Variable not set, using default")
		return nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s is not a number: %w", key, err)
	}

	*dst = n
	return nil
}

func lookupMillis(key string, dst *time.Duration) error {
	ms := int(*dst / time.Millisecond)
	if err := lookupInt(key, &ms); err != nil {
		return err
	}
	if ms <= 0 {
		return fmt.Errorf("%s must be positive: %d", key, ms)
	}

	*dst = time.Duration(ms) * time.Millisecond
	return nil
}
