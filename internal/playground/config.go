package playground

import (
	"fmt"

	"go.uber.org/zap"
)

const maxCount = 10_000

// Config controls a playground run.
type Config struct {
	Count  int    // number of fake users
	Seed   int64  // 0 picks a seed from the clock
	Locale string // BCP 47 tag used to collate emails
	Logger *zap.Logger
}

// DefaultConfig mirrors the documentation example: five users, English collation.
func DefaultConfig() Config {
	return Config{
		Count:  5,
		Locale: "en",
		Logger: zap.NewNop(),
	}
}

// Validate checks the numeric bounds of the config.
func (c Config) Validate() error {
	if c.Count < 0 || c.Count > maxCount {
		return fmt.Errorf("count must be between 0 and %d, got %d", maxCount, c.Count)
	}
	if c.Locale == "" {
		return fmt.Errorf("locale must not be empty")
	}
	return nil
}
