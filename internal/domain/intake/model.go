package intake

import "medication-tracker/internal/domain/segments"

// StoreKey es la key versionada del registro de tomas del día.
const StoreKey = "MEDICATION_INTAKE_V1"

// Record es el ledger de tomas de UN día. Solo es válido mientras
// DateKey == hoy; cualquier otro dateKey se descarta al cargar (rollover).
// Ausencia de medId o segmento equivale a "no tomado".
type Record struct {
	DateKey string                          `json:"dateKey"` // "YYYY-MM-DD" local
	Intake  map[string]map[segments.ID]bool `json:"intake"`
}

func emptyRecord(dateKey string) Record {
	return Record{
		DateKey: dateKey,
		Intake:  map[string]map[segments.ID]bool{},
	}
}

// Taken devuelve el flag para (medId, segmento); false para cualquier
// key ausente. Nunca falla con ids desconocidos.
func (r Record) Taken(medID string, seg segments.ID) bool {
	forMed, ok := r.Intake[medID]
	if !ok {
		return false
	}
	return forMed[seg]
}
