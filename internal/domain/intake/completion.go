package intake

import "medication-tracker/internal/domain/segments"

// Complete decide si un medicamento está "listo por hoy": todos sus
// segmentos configurados marcados como tomados en el registro.
// Set vacío => false siempre (medicamento mal configurado nunca está
// completo; así se evita la verdad vacua del AND).
func Complete(rec Record, medID string, segs []segments.ID) bool {
	if len(segs) == 0 {
		return false
	}
	for _, seg := range segs {
		if !rec.Taken(medID, seg) {
			return false
		}
	}
	return true
}

// IsComplete es la variante sobre el estado vivo del tracker.
func (t *Tracker) IsComplete(medID string, segs []segments.ID) bool {
	if len(segs) == 0 {
		return false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	forMed, ok := t.intake[medID]
	if !ok {
		return false
	}
	for _, seg := range segs {
		if !forMed[seg] {
			return false
		}
	}
	return true
}

// PickCompletionMessage elige un mensaje del pool de forma determinística:
// hash estable del id (suma de code points) módulo el largo del pool.
// Mismo id => mismo mensaje mientras el pool no cambie. Puro, testeable.
func PickCompletionMessage(medID string, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	if medID == "" {
		return pool[0]
	}

	sum := 0
	for _, r := range medID {
		sum += int(r)
	}
	return pool[sum%len(pool)]
}
