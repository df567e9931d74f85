package intake

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"medication-tracker/internal/domain/segments"
	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/ports/storage"
)

// Tracker es el dueño del estado "qué dosis se tomó hoy".
// Es storage permisivo a propósito: no valida que (medId, segmento)
// pertenezca a la configuración vigente del medicamento; esa
// responsabilidad queda en el call site (ver DESIGN.md).
type Tracker struct {
	mu    sync.RWMutex
	store storage.Store
	log   logger.Logger
	now   func() time.Time

	dateKey string
	intake  map[string]map[segments.ID]bool
	ready   bool
}

func NewTracker(store storage.Store, log logger.Logger) *Tracker {
	return &Tracker{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

func (t *Tracker) todayKey() string {
	return t.now().Format("2006-01-02")
}

// Load carga el registro persistido y aplica el rollover de día:
// registro ausente, malformado o con dateKey distinto de hoy se
// reemplaza por un registro vacío sellado con la fecha de hoy.
// Un fallo de lectura nunca es fatal: se loguea y se arranca vacío.
func (t *Tracker) Load(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.todayKey()
	fresh := emptyRecord(today)

	raw, found, err := t.store.Get(ctx, StoreKey)
	if err != nil {
		t.log.Warn("error loading intake, starting empty", map[string]any{"key": StoreKey, "err": err.Error()})
		t.apply(fresh)
		return
	}
	if !found {
		t.apply(fresh)
		return
	}

	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.log.Warn("malformed intake record, starting empty", map[string]any{"key": StoreKey, "err": err.Error()})
		t.apply(fresh)
		return
	}

	// Rollover: cada día arranca limpio, nada se arrastra.
	if rec.DateKey != today {
		t.apply(fresh)
		return
	}

	if rec.Intake == nil {
		rec.Intake = map[string]map[segments.ID]bool{}
	}
	t.apply(rec)
}

func (t *Tracker) apply(rec Record) {
	t.dateKey = rec.DateKey
	t.intake = rec.Intake
	t.ready = true
}

func (t *Tracker) Ready() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ready
}

func (t *Tracker) DateKey() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dateKey
}

func (t *Tracker) IsTaken(medID string, seg segments.ID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	forMed, ok := t.intake[medID]
	if !ok {
		return false
	}
	return forMed[seg]
}

// MarkTaken marca (medId, segmento) como tomado hoy. Idempotente:
// si ya estaba en true no cambia nada y NO dispara escritura.
func (t *Tracker) MarkTaken(ctx context.Context, medID string, seg segments.ID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	forMed, ok := t.intake[medID]
	if ok && forMed[seg] {
		return // ya tomado, sin write redundante
	}

	if !ok {
		forMed = map[segments.ID]bool{}
		t.intake[medID] = forMed
	}
	forMed[seg] = true

	t.persistLocked(ctx)
}

// DropMedication elimina el sub-map completo del medicamento.
// No-op (sin escritura) si no estaba presente.
func (t *Tracker) DropMedication(ctx context.Context, medID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.intake[medID]; !ok {
		return
	}
	delete(t.intake, medID)

	t.persistLocked(ctx)
}

// Snapshot devuelve una copia del registro vigente (para evaluar
// completitud sin sostener el lock del tracker).
func (t *Tracker) Snapshot() Record {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cp := emptyRecord(t.dateKey)
	for medID, forMed := range t.intake {
		inner := make(map[segments.ID]bool, len(forMed))
		for seg, v := range forMed {
			inner[seg] = v
		}
		cp.Intake[medID] = inner
	}
	return cp
}

// persistLocked escribe el registro COMPLETO (dateKey + intake).
// Fallo de escritura se loguea y se absorbe; el estado en memoria
// sigue siendo la verdad (last-writer-wins en el próximo write).
func (t *Tracker) persistLocked(ctx context.Context) {
	rec := Record{DateKey: t.dateKey, Intake: t.intake}

	b, err := json.Marshal(rec)
	if err != nil {
		t.log.Error("error encoding intake", map[string]any{"key": StoreKey, "err": err.Error()})
		return
	}
	if err := t.store.Set(ctx, StoreKey, string(b)); err != nil {
		t.log.Error("error saving intake", map[string]any{"key": StoreKey, "err": err.Error()})
	}
}
