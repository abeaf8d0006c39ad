package module

import (
	"time"

	"gridiron/internal/platform/config"
)

// Options holds configuration options for the archive service
type Options struct {
	EnsureSchema     bool
	SampleBatch      int
	StatementTimeout time.Duration
	TxAttempts       int
}

// FromConfig reads the archive options from config with CORE_ARCHIVE_ prefix
func FromConfig(cfg config.Conf) Options {
	ar := cfg.Prefix("CORE_ARCHIVE_")
	return Options{
		EnsureSchema:     ar.MayBool("ENSURE_SCHEMA", true),
		SampleBatch:      ar.MayInt("CH_BATCH", 10000),
		StatementTimeout: ar.MayDuration("STATEMENT_TIMEOUT", 30*time.Second),
		TxAttempts:       ar.MayInt("TX_ATTEMPTS", 3),
	}
}
