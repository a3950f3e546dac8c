package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksAttempts(t *testing.T) {
	r := NewRecorder()

	r.RecordProviderAttempt("bulk", 10*time.Millisecond, nil)
	r.RecordProviderAttempt("bulk", 20*time.Millisecond, errors.New("boom"))

	snap := r.Snapshot("bulk")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastCallLatency != 20*time.Millisecond {
		t.Fatalf("expected last latency recorded, got %v", snap.LastCallLatency)
	}
}

func TestRecorderTracksRateLimitsAndDrops(t *testing.T) {
	r := NewRecorder()

	r.RecordRateLimit("team-log", 30*time.Second)
	r.RecordDroppedRecords("team-log", 3)
	r.RecordDroppedRecords("team-log", 0) // no-op

	snap := r.Snapshot("team-log")
	if snap.RateLimitHits != 1 || snap.LastRetryAfter != 30*time.Second {
		t.Fatalf("unexpected rate limit stats %+v", snap)
	}
	if snap.RecordsDropped != 3 {
		t.Fatalf("expected 3 dropped records, got %d", snap.RecordsDropped)
	}
}

func TestRecorderCountsCalendars(t *testing.T) {
	r := NewRecorder()
	r.RecordCalendarWritten()
	r.RecordCalendarWritten()
	if got := r.CalendarsWritten(); got != 2 {
		t.Fatalf("expected 2 calendars, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordProviderAttempt("bulk", time.Millisecond, nil)
	r.RecordRateLimit("bulk", 0)
	r.RecordDroppedRecords("bulk", 1)
	r.RecordCalendarWritten()
	if r.ProviderCalls("bulk") != 0 || r.CalendarsWritten() != 0 {
		t.Fatalf("nil recorder should report zeros")
	}
}
