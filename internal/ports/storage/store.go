package storage

import "context"

// Store es el colaborador de persistencia: key-value plano con keys
// versionadas (MEDICATIONS_V1, etc). El value siempre es el registro
// completo serializado, nunca un delta.
type Store interface {
	// Get devuelve (value, found, err). found=false cuando la key no existe.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
