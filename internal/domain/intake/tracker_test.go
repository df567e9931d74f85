package intake

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"medication-tracker/internal/domain/segments"
	"medication-tracker/internal/platform/logger"
)

// -------------------------
// Test store (in-memory)
// -------------------------

type testStore struct {
	data   map[string]string
	sets   int
	getErr error
	setErr error
}

func newTestStore() *testStore {
	return &testStore{data: map[string]string{}}
}

func (s *testStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *testStore) Set(ctx context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.sets++
	s.data[key] = value
	return nil
}

func testLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

func fixedNow() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 3, 22, 10, 0, 0, 0, time.Local)
	}
}

func newTestTracker(store *testStore) *Tracker {
	tr := NewTracker(store, testLogger())
	tr.now = fixedNow()
	return tr
}

// -------------------------
// Tests
// -------------------------

func TestLoad_FreshWhenAbsent(t *testing.T) {
	store := newTestStore()
	tr := newTestTracker(store)

	tr.Load(context.Background())

	if !tr.Ready() {
		t.Fatalf("expected tracker ready after load")
	}
	if tr.DateKey() != "2025-03-22" {
		t.Fatalf("expected today's dateKey, got %s", tr.DateKey())
	}
	if store.sets != 0 {
		t.Fatalf("load must not write, got %d writes", store.sets)
	}
}

func TestLoad_RolloverDiscardsStaleRecord(t *testing.T) {
	store := newTestStore()
	store.data[StoreKey] = `{"dateKey":"2025-03-21","intake":{"med-1":{"morning":true}}}`

	tr := newTestTracker(store)
	tr.Load(context.Background())

	if tr.DateKey() != "2025-03-22" {
		t.Fatalf("expected rollover to today, got %s", tr.DateKey())
	}
	if tr.IsTaken("med-1", segments.Morning) {
		t.Fatalf("stale intake must not carry over across days")
	}
}

func TestLoad_SameDayKeepsRecord(t *testing.T) {
	store := newTestStore()
	store.data[StoreKey] = `{"dateKey":"2025-03-22","intake":{"med-1":{"morning":true}}}`

	tr := newTestTracker(store)
	tr.Load(context.Background())

	if !tr.IsTaken("med-1", segments.Morning) {
		t.Fatalf("expected same-day record to survive load")
	}
	if tr.IsTaken("med-1", segments.Evening) {
		t.Fatalf("absent segment must read false")
	}
}

func TestLoad_MalformedStartsEmpty(t *testing.T) {
	store := newTestStore()
	store.data[StoreKey] = `{not json`

	tr := newTestTracker(store)
	tr.Load(context.Background())

	if !tr.Ready() {
		t.Fatalf("malformed record must not block readiness")
	}
	if tr.DateKey() != "2025-03-22" {
		t.Fatalf("expected fresh record stamped today, got %s", tr.DateKey())
	}
}

func TestLoad_ReadErrorStartsEmpty(t *testing.T) {
	store := newTestStore()
	store.getErr = errors.New("boom")

	tr := newTestTracker(store)
	tr.Load(context.Background())

	if !tr.Ready() {
		t.Fatalf("read error must not block readiness")
	}
	if tr.IsTaken("med-1", segments.Morning) {
		t.Fatalf("expected empty intake after read error")
	}
}

func TestMarkTaken_IdempotentSingleWrite(t *testing.T) {
	store := newTestStore()
	tr := newTestTracker(store)
	tr.Load(context.Background())

	ctx := context.Background()
	tr.MarkTaken(ctx, "med-1", segments.Morning)
	tr.MarkTaken(ctx, "med-1", segments.Morning)

	if !tr.IsTaken("med-1", segments.Morning) {
		t.Fatalf("expected dose marked taken")
	}
	if store.sets != 1 {
		t.Fatalf("expected exactly one persistence write, got %d", store.sets)
	}
}

func TestMarkTaken_PersistsWholeRecord(t *testing.T) {
	store := newTestStore()
	tr := newTestTracker(store)
	tr.Load(context.Background())

	tr.MarkTaken(context.Background(), "med-1", segments.Night)

	var rec Record
	if err := json.Unmarshal([]byte(store.data[StoreKey]), &rec); err != nil {
		t.Fatalf("persisted record must be valid JSON: %v", err)
	}
	if rec.DateKey != "2025-03-22" {
		t.Fatalf("expected dateKey in persisted record, got %s", rec.DateKey)
	}
	if !rec.Intake["med-1"][segments.Night] {
		t.Fatalf("expected intake flag in persisted record")
	}
}

func TestDropMedication_RemovesSubMap(t *testing.T) {
	store := newTestStore()
	tr := newTestTracker(store)
	tr.Load(context.Background())

	ctx := context.Background()
	tr.MarkTaken(ctx, "med-1", segments.Morning)
	tr.MarkTaken(ctx, "med-2", segments.Evening)

	tr.DropMedication(ctx, "med-1")

	if tr.IsTaken("med-1", segments.Morning) {
		t.Fatalf("expected dropped medication to read false")
	}
	if !tr.IsTaken("med-2", segments.Evening) {
		t.Fatalf("other medications must keep their flags")
	}
	if store.sets != 3 {
		t.Fatalf("expected 3 writes (2 marks + 1 drop), got %d", store.sets)
	}
}

func TestDropMedication_UnknownIsNoop(t *testing.T) {
	store := newTestStore()
	tr := newTestTracker(store)
	tr.Load(context.Background())

	tr.DropMedication(context.Background(), "ghost")

	if store.sets != 0 {
		t.Fatalf("drop of absent medication must not write, got %d", store.sets)
	}
}

func TestIsTaken_UnknownIdsFalse(t *testing.T) {
	store := newTestStore()
	tr := newTestTracker(store)
	tr.Load(context.Background())

	if tr.IsTaken("ghost", segments.Morning) {
		t.Fatalf("unknown medication must read false")
	}
	if tr.IsTaken("ghost", segments.ID("dawn")) {
		t.Fatalf("unknown segment must read false, never panic")
	}
}

func TestMarkTaken_WriteFailureKeepsMemoryState(t *testing.T) {
	store := newTestStore()
	tr := newTestTracker(store)
	tr.Load(context.Background())

	store.setErr = errors.New("disk full")
	tr.MarkTaken(context.Background(), "med-1", segments.Day)

	// La falla se absorbe: el estado en memoria sigue siendo la verdad.
	if !tr.IsTaken("med-1", segments.Day) {
		t.Fatalf("expected in-memory state despite write failure")
	}
}
