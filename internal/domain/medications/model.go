package medications

import "medication-tracker/internal/domain/segments"

// StoreKey es la key versionada de la lista de medicamentos.
const StoreKey = "MEDICATIONS_V1"

// Medication es un medicamento registrado por el usuario.
// Tags JSON en camelCase para ser compatible con los registros V1
// que escribía la app original.
type Medication struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DoseAmount int    `json:"doseAmount"` // unidades por toma

	// Segments es el set configurado (1..4, únicos), normalizado a
	// orden canónico al crear. Un medicamento persistido nunca lo
	// tiene vacío; si llega vacío desde storage se trata como
	// incompleto y queda fuera de la lógica de completitud.
	Segments []segments.ID `json:"segments"`

	// TimesPerDay es derivado (= len(Segments)); se conserva por
	// compatibilidad con el modelo persistido.
	TimesPerDay int `json:"timesPerDay"`

	// DoseTimes son horas nominales "HH:MM", una por segmento en orden
	// de catálogo. Solo informativo, no se muestra al usuario.
	DoseTimes []string `json:"doseTimes"`
}
