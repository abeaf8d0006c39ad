package http

import (
	"testing"
	"time"
)

func TestDescribe(t *testing.T) {
	start := time.Date(2026, 10, 14, 9, 0, 0, 0, time.FixedZone("EDT", -4*3600))
	d := Deps{ServiceName: "gridiron-api", StartedAt: start}

	got := d.describe(start.Add(90 * time.Second))
	if got.Started != "2026-10-14T13:00:00Z" || got.Uptime != 90 || got.Plays != 0 {
		t.Fatalf("describe %+v", got)
	}

	d.Plays = func() int { return 12 }
	if got := d.describe(start); got.Plays != 12 || got.Uptime != 0 {
		t.Fatalf("describe with plays %+v", got)
	}
}
