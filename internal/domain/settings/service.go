package settings

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/ports/storage"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Service carga/guarda los ajustes como UN registro con default-merge:
// keys faltantes caen a Defaults(), y keys extra presentes en storage
// (de versiones futuras de la app) se preservan en el round-trip.
type Service struct {
	mu    sync.RWMutex
	store storage.Store
	log   logger.Logger

	settings Settings
	extra    map[string]json.RawMessage // keys desconocidas, se re-escriben tal cual
	ready    bool
}

func NewService(store storage.Store, log logger.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// Load lee el registro y lo mergea sobre los defaults. Registro
// ausente o malformado => defaults, nunca un crash.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = Defaults()
	s.extra = nil
	s.ready = true

	raw, found, err := s.store.Get(ctx, StoreKey)
	if err != nil {
		s.log.Warn("error loading settings, using defaults", map[string]any{"key": StoreKey, "err": err.Error()})
		return
	}
	if !found {
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		s.log.Warn("malformed settings record, using defaults", map[string]any{"key": StoreKey, "err": err.Error()})
		return
	}

	// Merge key por key: solo las presentes pisan el default.
	if v, ok := fields["notificationsEnabled"]; ok {
		_ = json.Unmarshal(v, &s.settings.NotificationsEnabled)
		delete(fields, "notificationsEnabled")
	}
	if v, ok := fields["themeMode"]; ok {
		_ = json.Unmarshal(v, &s.settings.ThemeMode)
		delete(fields, "themeMode")
	}

	if len(fields) > 0 {
		s.extra = fields
	}
}

func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

func (s *Service) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

type UpdateInput struct {
	// Punteros: nil = no tocar ese campo.
	NotificationsEnabled *bool
	ThemeMode            *ThemeMode
}

// Update aplica los campos presentes y persiste el registro completo.
func (s *Service) Update(ctx context.Context, in UpdateInput) (Settings, error) {
	if in.ThemeMode != nil && !validThemeMode(*in.ThemeMode) {
		return Settings{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if in.NotificationsEnabled != nil {
		s.settings.NotificationsEnabled = *in.NotificationsEnabled
	}
	if in.ThemeMode != nil {
		s.settings.ThemeMode = *in.ThemeMode
	}

	s.persistLocked(ctx)
	return s.settings, nil
}

// persistLocked escribe conocidos + extras en un solo objeto.
// Fallo de escritura se loguea y se absorbe.
func (s *Service) persistLocked(ctx context.Context) {
	out := map[string]json.RawMessage{}
	for k, v := range s.extra {
		out[k] = v
	}

	ne, _ := json.Marshal(s.settings.NotificationsEnabled)
	tm, _ := json.Marshal(s.settings.ThemeMode)
	out["notificationsEnabled"] = ne
	out["themeMode"] = tm

	b, err := json.Marshal(out)
	if err != nil {
		s.log.Error("error encoding settings", map[string]any{"key": StoreKey, "err": err.Error()})
		return
	}
	if err := s.store.Set(ctx, StoreKey, string(b)); err != nil {
		s.log.Error("error saving settings", map[string]any{"key": StoreKey, "err": err.Error()})
	}
}
