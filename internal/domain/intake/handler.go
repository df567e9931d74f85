package intake

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/domain/segments"
)

func RegisterRoutes(r chi.Router, t *Tracker, medsSvc *medications.Service) {
	r.Route("/medications/{medID}/doses/{segmentID}", func(dr chi.Router) {
		dr.Post("/", markDoseTakenHandler(t))
		dr.Get("/", isDoseTakenHandler(t))
	})

	r.Get("/medications/{medID}/status", medicationStatusHandler(t, medsSvc))
}

type doseResponse struct {
	MedID     string `json:"medId"`
	SegmentID string `json:"segmentId"`
	Taken     bool   `json:"taken"`
	DateKey   string `json:"dateKey"`
}

type statusResponse struct {
	MedID         string          `json:"medId"`
	DateKey       string          `json:"dateKey"`
	SegmentsLabel string          `json:"segmentsLabel"`
	Taken         map[string]bool `json:"taken"` // por segmento configurado
	Complete      bool            `json:"complete"`
	Message       string          `json:"message,omitempty"` // solo al completar
}

// markDoseTakenHandler godoc
// @Summary Marca una dosis como tomada hoy (idempotente)
// @Produce json
// @Success 200 {object} intake.doseResponse
// @Failure 400 {string} string "unknown segment"
// @Router /medications/{medID}/doses/{segmentID} [post]
func markDoseTakenHandler(t *Tracker) http.HandlerFunc {
	// Solo se valida que el segmento exista en el catálogo. No se
	// cruza contra la configuración del medicamento: el tracker es
	// permisivo a propósito (decisión documentada en DESIGN.md).
	return func(w http.ResponseWriter, r *http.Request) {
		medID := chi.URLParam(r, "medID")
		seg := segments.ID(chi.URLParam(r, "segmentID"))

		if !segments.IsValid(seg) {
			http.Error(w, "unknown segment", http.StatusBadRequest)
			return
		}

		t.MarkTaken(r.Context(), medID, seg)

		writeJSON(w, http.StatusOK, doseResponse{
			MedID:     medID,
			SegmentID: string(seg),
			Taken:     true,
			DateKey:   t.DateKey(),
		})
	}
}

// isDoseTakenHandler godoc
// @Summary Flag tomado/no tomado de una dosis de hoy
// @Produce json
// @Success 200 {object} intake.doseResponse
// @Router /medications/{medID}/doses/{segmentID} [get]
func isDoseTakenHandler(t *Tracker) http.HandlerFunc {
	// Ids desconocidos responden taken=false, nunca error.
	return func(w http.ResponseWriter, r *http.Request) {
		medID := chi.URLParam(r, "medID")
		seg := segments.ID(chi.URLParam(r, "segmentID"))

		writeJSON(w, http.StatusOK, doseResponse{
			MedID:     medID,
			SegmentID: string(seg),
			Taken:     t.IsTaken(medID, seg),
			DateKey:   t.DateKey(),
		})
	}
}

// medicationStatusHandler godoc
// @Summary Estado de hoy por medicamento: tomas, completitud y mensaje
// @Produce json
// @Success 200 {object} intake.statusResponse
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medID}/status [get]
func medicationStatusHandler(t *Tracker, medsSvc *medications.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		medID := chi.URLParam(r, "medID")

		med, ok := medsSvc.Get(medID)
		if !ok {
			http.Error(w, "medication not found", http.StatusNotFound)
			return
		}

		taken := make(map[string]bool, len(med.Segments))
		for _, seg := range med.Segments {
			taken[string(seg)] = t.IsTaken(med.ID, seg)
		}

		resp := statusResponse{
			MedID:         med.ID,
			DateKey:       t.DateKey(),
			SegmentsLabel: segments.FormatLabel(med.Segments),
			Taken:         taken,
			Complete:      t.IsComplete(med.ID, med.Segments),
		}
		if resp.Complete {
			resp.Message = PickCompletionMessage(med.ID, CompleteTexts)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
