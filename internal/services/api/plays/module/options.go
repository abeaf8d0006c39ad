package module

import (
	"gridiron/internal/core/playbook"
	"gridiron/internal/platform/config"
)

// Options locate the tables the API serves
// they share the CORE_EXPORT_ keys so both binaries read the same sources
type Options struct {
	Input  string
	Output string
	Meta   playbook.Metadata
}

// FromConfig reads the source options
func FromConfig(cfg config.Conf) Options {
	ex := cfg.Prefix("CORE_EXPORT_")
	return Options{
		Input:  ex.MayString("INPUT", "data/input_2023_w02.csv"),
		Output: ex.MayString("OUTPUT", "data/output_2023_w02.csv"),
		Meta: playbook.Metadata{
			Source: ex.MayString("SOURCE", "NFL Big Data Bowl 2026"),
			Week:   ex.MayString("WEEK", "Week 2, 2023"),
		},
	}
}
