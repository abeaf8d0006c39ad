package modkit

import (
	"gridiron/internal/modkit/repokit"
	"gridiron/internal/platform/config"
	"gridiron/internal/platform/logger"
	"gridiron/internal/platform/store"
)

// Deps is what main hands to every module
// PG and CH stay nil when the backend is not configured
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
