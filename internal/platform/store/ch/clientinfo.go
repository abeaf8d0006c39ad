package ch

import (
	"os"
	"runtime"
	"strings"

	"gridiron/internal/core/version"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo names this binary in system.query_log
// role is the process ("api", "export"), tag the archive role
func BuildClientInfo(role, tag string) clickhouse.ClientInfo {
	bi := version.Info()
	host, _ := os.Hostname()

	ci := clickhouse.ClientInfo{}
	for _, p := range [][2]string{
		{bi.Service, strings.TrimSpace(tag)},
		{"role", strings.TrimSpace(role)},
		{"build", bi.Version + "+" + shortCommit(bi.Commit)},
		{"go", runtime.Version()},
		{"host", host},
	} {
		ci.Products = append(ci.Products, struct{ Name, Version string }{p[0], p[1]})
	}
	return ci
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
