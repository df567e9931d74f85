package medications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"medication-tracker/internal/domain/segments"
	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/ports/storage"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// IntakeDropper es lo único que el registry necesita del tracker:
// borrar el sub-map de un medicamento eliminado del registro de hoy.
type IntakeDropper interface {
	DropMedication(ctx context.Context, medID string)
}

// Service es el registry de medicamentos: lista en memoria con orden
// de inserción, persistida completa en cada mutación exitosa.
type Service struct {
	mu      sync.RWMutex
	store   storage.Store
	log     logger.Logger
	dropper IntakeDropper
	now     func() time.Time

	meds  []Medication
	ready bool
}

func NewService(store storage.Store, dropper IntakeDropper, log logger.Logger) *Service {
	return &Service{
		store:   store,
		log:     log,
		dropper: dropper,
		now:     time.Now,
	}
}

// Load lee la lista persistida. Registro ausente o malformado no es
// fatal: se loguea y se arranca con lista vacía.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.meds = []Medication{}
	s.ready = true

	raw, found, err := s.store.Get(ctx, StoreKey)
	if err != nil {
		s.log.Warn("error loading medications, starting empty", map[string]any{"key": StoreKey, "err": err.Error()})
		return
	}
	if !found {
		return
	}

	var meds []Medication
	if err := json.Unmarshal([]byte(raw), &meds); err != nil {
		s.log.Warn("malformed medications record, starting empty", map[string]any{"key": StoreKey, "err": err.Error()})
		return
	}
	if meds != nil {
		s.meds = meds
	}
}

func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

type AddInput struct {
	Name       string
	DoseAmount int
	Segments   []segments.ID
}

// Add valida, genera id, deriva timesPerDay/doseTimes y persiste la
// lista completa. Los segmentos quedan normalizados en orden canónico.
func (s *Service) Add(ctx context.Context, in AddInput) (Medication, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Medication{}, ErrInvalidInput
	}
	if in.DoseAmount <= 0 {
		return Medication{}, ErrInvalidInput
	}
	if len(in.Segments) == 0 || len(in.Segments) > 4 {
		return Medication{}, ErrInvalidInput
	}

	seen := map[segments.ID]struct{}{}
	for _, seg := range in.Segments {
		if !segments.IsValid(seg) {
			return Medication{}, ErrInvalidInput
		}
		if _, dup := seen[seg]; dup {
			return Medication{}, ErrInvalidInput
		}
		seen[seg] = struct{}{}
	}

	segs := segments.SortCanonical(in.Segments)

	med := Medication{
		ID:          s.newID(),
		Name:        name,
		DoseAmount:  in.DoseAmount,
		Segments:    segs,
		TimesPerDay: len(segs),
		DoseTimes:   segments.ProjectDoseTimes(segs),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.meds = append(s.meds, med)
	s.persistLocked(ctx)

	return med, nil
}

// Remove saca el medicamento de la lista y cascadea el borrado de sus
// tomas de hoy. Id inexistente es no-op silencioso, sin escritura.
// Las dos persistencias (lista y registro de tomas) son independientes.
func (s *Service) Remove(ctx context.Context, id string) {
	s.mu.Lock()

	idx := -1
	for i, med := range s.meds {
		if med.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	s.meds = append(s.meds[:idx], s.meds[idx+1:]...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.dropper.DropMedication(ctx, id)
}

// List devuelve la lista en orden de inserción (copia defensiva).
func (s *Service) List() []Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Medication, len(s.meds))
	copy(out, s.meds)
	return out
}

func (s *Service) Get(id string) (Medication, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, med := range s.meds {
		if med.ID == id {
			return med, true
		}
	}
	return Medication{}, false
}

// newID combina componente temporal monotónico y componente aleatorio.
// Colisión se acepta como despreciable (mismo criterio que el id
// original med_<millis>_<rand>).
func (s *Service) newID() string {
	return fmt.Sprintf("med-%d-%s", s.now().UnixMilli(), uuid.NewString()[:8])
}

// persistLocked escribe la lista COMPLETA (sin deltas ni batching).
// Fallo de escritura se loguea y se absorbe.
func (s *Service) persistLocked(ctx context.Context) {
	b, err := json.Marshal(s.meds)
	if err != nil {
		s.log.Error("error encoding medications", map[string]any{"key": StoreKey, "err": err.Error()})
		return
	}
	if err := s.store.Set(ctx, StoreKey, string(b)); err != nil {
		s.log.Error("error saving medications", map[string]any{"key": StoreKey, "err": err.Error()})
	}
}
