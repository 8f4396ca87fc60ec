package perf

import (
	"fmt"
	"testing"
	"time"
)

// TestCollector_RecordAndCount verifies simple recording.
func TestCollector_RecordAndCount(t *testing.T) {
	c := NewCollector(8)
	for i := 0; i < 3; i++ {
		c.Record(Entry{Kind: KindRequest, Path: "GET /appointments", DurationMs: 1, Timestamp: time.Now()})
	}
	if got := c.TotalRecorded(); got != 3 {
		t.Errorf("TotalRecorded() = %d, want 3", got)
	}
}

// TestCollector_RingOverwrite verifies oldest entries are overwritten when full.
func TestCollector_RingOverwrite(t *testing.T) {
	c := NewCollector(4)
	for i := 0; i < 10; i++ {
		c.Record(Entry{Kind: KindRequest, Path: fmt.Sprintf("GET /p%d", i), DurationMs: 1, Timestamp: time.Now()})
	}
	snap := c.Snapshot(time.Time{}, 100)
	if snap.TotalRecorded != 10 {
		t.Errorf("TotalRecorded = %d, want 10", snap.TotalRecorded)
	}
	if len(snap.SlowestPaths) != 4 {
		t.Errorf("SlowestPaths len = %d, want 4 (ring capacity)", len(snap.SlowestPaths))
	}
}

// TestCollector_SnapshotAggregates verifies per-path aggregation and percentiles.
func TestCollector_SnapshotAggregates(t *testing.T) {
	c := NewCollector(16)
	now := time.Now()
	c.Record(Entry{Kind: KindRequest, Path: "GET /a", DurationMs: 10, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "GET /a", DurationMs: 30, Timestamp: now})
	c.Record(Entry{Kind: KindQuery, Path: "QueryContext", DurationMs: 5, Timestamp: now})

	snap := c.Snapshot(time.Time{}, 5)
	if len(snap.SlowestPaths) != 1 {
		t.Fatalf("SlowestPaths len = %d, want 1", len(snap.SlowestPaths))
	}
	stat := snap.SlowestPaths[0]
	if stat.Count != 2 || stat.AvgMs != 20 || stat.MaxMs != 30 {
		t.Errorf("stat = %+v, want count 2, avg 20, max 30", stat)
	}
	if len(snap.SlowestQueries) != 1 {
		t.Errorf("SlowestQueries len = %d, want 1", len(snap.SlowestQueries))
	}
	if snap.RequestP50Ms == 0 {
		t.Error("RequestP50Ms = 0, want > 0")
	}
}

// TestCollector_SnapshotSinceFilter verifies old entries are excluded.
func TestCollector_SnapshotSinceFilter(t *testing.T) {
	c := NewCollector(16)
	c.Record(Entry{Kind: KindRequest, Path: "GET /old", DurationMs: 1, Timestamp: time.Now().Add(-time.Hour)})
	c.Record(Entry{Kind: KindRequest, Path: "GET /new", DurationMs: 1, Timestamp: time.Now()})

	snap := c.Snapshot(time.Now().Add(-time.Minute), 5)
	if len(snap.SlowestPaths) != 1 || snap.SlowestPaths[0].Path != "GET /new" {
		t.Errorf("SlowestPaths = %+v, want only GET /new", snap.SlowestPaths)
	}
}
