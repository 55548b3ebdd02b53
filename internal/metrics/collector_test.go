package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestRecordTiming(t *testing.T) {
	c := NewCollector()

	c.RecordTiming(OpScanSimilarity, 10*time.Millisecond)
	c.RecordTiming(OpScanSimilarity, 30*time.Millisecond)
	c.RecordTiming(OpAggregate, 5*time.Millisecond)

	snap := c.Snapshot()
	if len(snap.Operations) != 2 {
		t.Fatalf("got %d operations, want 2", len(snap.Operations))
	}

	// Sorted by name: aggregate before scan_similarity.
	agg := snap.Operations[0]
	if agg.Name != OpAggregate || agg.Count != 1 || agg.TotalTimeMs != 5 {
		t.Errorf("aggregate snapshot = %+v", agg)
	}

	scan := snap.Operations[1]
	if scan.Name != OpScanSimilarity {
		t.Fatalf("second operation = %q, want %q", scan.Name, OpScanSimilarity)
	}
	if scan.Count != 2 || scan.TotalTimeMs != 40 {
		t.Errorf("scan counts = %d/%dms, want 2/40ms", scan.Count, scan.TotalTimeMs)
	}
	if scan.MinTimeMs != 10 || scan.MaxTimeMs != 30 {
		t.Errorf("scan min/max = %d/%d, want 10/30", scan.MinTimeMs, scan.MaxTimeMs)
	}
	if scan.AvgTimeMs != 20 {
		t.Errorf("scan avg = %v, want 20", scan.AvgTimeMs)
	}
}

func TestTime(t *testing.T) {
	c := NewCollector()

	ran := false
	c.Time(OpCluster, func() { ran = true })

	if !ran {
		t.Fatal("Time() did not run fn")
	}
	snap := c.Snapshot()
	if len(snap.Operations) != 1 || snap.Operations[0].Count != 1 {
		t.Errorf("snapshot = %+v", snap.Operations)
	}
}

func TestSnapshotEmpty(t *testing.T) {
	c := NewCollector()
	snap := c.Snapshot()
	if len(snap.Operations) != 0 {
		t.Errorf("got %d operations, want 0", len(snap.Operations))
	}
	if snap.UptimeSeconds < 0 {
		t.Errorf("UptimeSeconds = %v", snap.UptimeSeconds)
	}
}

func TestConcurrentRecording(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.RecordTiming(OpFindPaths, time.Millisecond)
		}()
	}
	wg.Wait()

	snap := c.Snapshot()
	if len(snap.Operations) != 1 || snap.Operations[0].Count != 50 {
		t.Errorf("snapshot = %+v, want 50 recordings", snap.Operations)
	}
}
