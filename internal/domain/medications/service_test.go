package medications

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"medication-tracker/internal/domain/segments"
	"medication-tracker/internal/platform/logger"
)

// -------------------------
// Test store + dropper
// -------------------------

type testStore struct {
	data map[string]string
	sets int
}

func newTestStore() *testStore {
	return &testStore{data: map[string]string{}}
}

func (s *testStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *testStore) Set(ctx context.Context, key, value string) error {
	s.sets++
	s.data[key] = value
	return nil
}

type testDropper struct {
	dropped []string
}

func (d *testDropper) DropMedication(ctx context.Context, medID string) {
	d.dropped = append(d.dropped, medID)
}

func newTestService(store *testStore, dropper *testDropper) *Service {
	svc := NewService(store, dropper, logger.New(logger.Options{Level: logger.Error}))
	svc.now = func() time.Time {
		return time.Date(2025, 3, 22, 10, 0, 0, 0, time.Local)
	}
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestAdd_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		in   AddInput
	}{
		{"empty name", AddInput{Name: "", DoseAmount: 1, Segments: []segments.ID{segments.Morning}}},
		{"whitespace name", AddInput{Name: "   ", DoseAmount: 1, Segments: []segments.ID{segments.Morning}}},
		{"zero dose", AddInput{Name: "Panadol", DoseAmount: 0, Segments: []segments.ID{segments.Morning}}},
		{"negative dose", AddInput{Name: "Panadol", DoseAmount: -2, Segments: []segments.ID{segments.Morning}}},
		{"empty segments", AddInput{Name: "Panadol", DoseAmount: 1, Segments: nil}},
		{"duplicate segments", AddInput{Name: "Panadol", DoseAmount: 1, Segments: []segments.ID{segments.Morning, segments.Morning}}},
		{"unknown segment", AddInput{Name: "Panadol", DoseAmount: 1, Segments: []segments.ID{segments.Morning, segments.ID("dawn")}}},
		{"too many segments", AddInput{Name: "Panadol", DoseAmount: 1, Segments: []segments.ID{segments.Morning, segments.Day, segments.Evening, segments.Night, segments.Morning}}},
	}

	for _, tc := range cases {
		store := newTestStore()
		svc := newTestService(store, &testDropper{})
		svc.Load(context.Background())

		_, err := svc.Add(context.Background(), tc.in)
		if err != ErrInvalidInput {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
		if store.sets != 0 {
			t.Fatalf("%s: failed add must not persist", tc.name)
		}
	}
}

func TestAdd_DerivesFieldsAndPersists(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store, &testDropper{})
	svc.Load(context.Background())

	// Segmentos fuera de orden a propósito: deben normalizarse.
	med, err := svc.Add(context.Background(), AddInput{
		Name:       "  Panadol  ",
		DoseAmount: 1,
		Segments:   []segments.ID{segments.Evening, segments.Morning},
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if med.Name != "Panadol" {
		t.Fatalf("expected trimmed name, got %q", med.Name)
	}
	if !strings.HasPrefix(med.ID, "med-") {
		t.Fatalf("expected med- id prefix, got %s", med.ID)
	}
	if med.TimesPerDay != 2 {
		t.Fatalf("expected timesPerDay=2, got %d", med.TimesPerDay)
	}
	if len(med.Segments) != 2 || med.Segments[0] != segments.Morning || med.Segments[1] != segments.Evening {
		t.Fatalf("expected canonical segment order, got %v", med.Segments)
	}
	if len(med.DoseTimes) != 2 || med.DoseTimes[0] != "09:00" || med.DoseTimes[1] != "21:00" {
		t.Fatalf("expected dose times [09:00 21:00], got %v", med.DoseTimes)
	}
	if store.sets != 1 {
		t.Fatalf("expected one full-list write, got %d", store.sets)
	}

	// Lo persistido es la lista completa con tags camelCase (compat V1).
	var persisted []map[string]any
	if err := json.Unmarshal([]byte(store.data[StoreKey]), &persisted); err != nil {
		t.Fatalf("persisted list must be valid JSON: %v", err)
	}
	if len(persisted) != 1 || persisted[0]["doseAmount"] != float64(1) {
		t.Fatalf("unexpected persisted shape: %v", persisted)
	}
}

func TestAdd_GeneratesUniqueIDs(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store, &testDropper{})
	svc.Load(context.Background())

	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		med, err := svc.Add(context.Background(), AddInput{
			Name:       "Panadol",
			DoseAmount: 1,
			Segments:   []segments.ID{segments.Morning},
		})
		if err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
		if _, dup := seen[med.ID]; dup {
			t.Fatalf("duplicate id generated: %s", med.ID)
		}
		seen[med.ID] = struct{}{}
	}
}

func TestRemove_CascadesToIntake(t *testing.T) {
	store := newTestStore()
	dropper := &testDropper{}
	svc := newTestService(store, dropper)
	svc.Load(context.Background())

	med, _ := svc.Add(context.Background(), AddInput{
		Name:       "Burana",
		DoseAmount: 2,
		Segments:   []segments.ID{segments.Morning},
	})

	svc.Remove(context.Background(), med.ID)

	if len(svc.List()) != 0 {
		t.Fatalf("expected empty list after remove")
	}
	if len(dropper.dropped) != 1 || dropper.dropped[0] != med.ID {
		t.Fatalf("expected intake drop for %s, got %v", med.ID, dropper.dropped)
	}
	if store.sets != 2 {
		t.Fatalf("expected add+remove writes, got %d", store.sets)
	}
}

func TestRemove_UnknownIsSilentNoop(t *testing.T) {
	store := newTestStore()
	dropper := &testDropper{}
	svc := newTestService(store, dropper)
	svc.Load(context.Background())

	svc.Remove(context.Background(), "ghost")

	if store.sets != 0 {
		t.Fatalf("remove of unknown id must not persist")
	}
	if len(dropper.dropped) != 0 {
		t.Fatalf("remove of unknown id must not cascade")
	}
}

func TestList_InsertionOrderAndCopy(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store, &testDropper{})
	svc.Load(context.Background())

	first, _ := svc.Add(context.Background(), AddInput{Name: "A", DoseAmount: 1, Segments: []segments.ID{segments.Morning}})
	second, _ := svc.Add(context.Background(), AddInput{Name: "B", DoseAmount: 1, Segments: []segments.ID{segments.Night}})

	list := svc.List()
	if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatalf("expected insertion order, got %v", list)
	}

	// Copia defensiva: mutar lo devuelto no toca el estado interno.
	list[0].Name = "mutated"
	if got, _ := svc.Get(first.ID); got.Name != "A" {
		t.Fatalf("List must return a copy")
	}
}

func TestLoad_AbsentAndMalformed(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store, &testDropper{})
	svc.Load(context.Background())
	if !svc.Ready() || len(svc.List()) != 0 {
		t.Fatalf("absent record must load as empty ready list")
	}

	store2 := newTestStore()
	store2.data[StoreKey] = `{broken`
	svc2 := newTestService(store2, &testDropper{})
	svc2.Load(context.Background())
	if !svc2.Ready() || len(svc2.List()) != 0 {
		t.Fatalf("malformed record must load as empty ready list")
	}
}

func TestLoad_RestoresPersistedList(t *testing.T) {
	store := newTestStore()
	store.data[StoreKey] = `[{"id":"med-1","name":"Panadol","doseAmount":1,"segments":["morning","evening"],"timesPerDay":2,"doseTimes":["09:00","21:00"]}]`

	svc := newTestService(store, &testDropper{})
	svc.Load(context.Background())

	med, ok := svc.Get("med-1")
	if !ok {
		t.Fatalf("expected persisted medication restored")
	}
	if med.TimesPerDay != 2 || med.Segments[1] != segments.Evening {
		t.Fatalf("unexpected restored medication: %+v", med)
	}
}
