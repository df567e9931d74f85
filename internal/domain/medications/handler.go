package medications

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"medication-tracker/internal/domain/segments"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Post("/", createMedicationHandler(svc))
		mr.Get("/", listMedicationsHandler(svc))
		mr.Delete("/{medID}", removeMedicationHandler(svc))
	})
}

type createMedicationRequest struct {
	Name       string   `json:"name"`
	DoseAmount int      `json:"doseAmount"`
	Segments   []string `json:"segments"`
}

type medicationResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	DoseAmount    int      `json:"doseAmount"`
	Segments      []string `json:"segments"`
	TimesPerDay   int      `json:"timesPerDay"`
	DoseTimes     []string `json:"doseTimes"`
	SegmentsLabel string   `json:"segmentsLabel"` // texto listo para UI
}

// createMedicationHandler godoc
// @Summary Registra un medicamento
// @Accept json
// @Produce json
// @Param medication body medications.createMedicationRequest true "medicamento"
// @Success 201 {object} medications.medicationResponse
// @Failure 400 {string} string "invalid input"
// @Router /medications [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		segs := make([]segments.ID, 0, len(req.Segments))
		for _, s := range req.Segments {
			segs = append(segs, segments.ID(s))
		}

		med, err := svc.Add(r.Context(), AddInput{
			Name:       req.Name,
			DoseAmount: req.DoseAmount,
			Segments:   segs,
		})
		if err != nil {
			// Validación: el caller puede mostrar mensaje inline y
			// mantener al usuario en el paso actual.
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toMedicationResponse(med))
	}
}

// listMedicationsHandler godoc
// @Summary Lista los medicamentos en orden de inserción
// @Produce json
// @Success 200 {array} medications.medicationResponse
// @Router /medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		items := svc.List()

		out := make([]medicationResponse, 0, len(items))
		for _, med := range items {
			out = append(out, toMedicationResponse(med))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// removeMedicationHandler godoc
// @Summary Elimina un medicamento y sus tomas de hoy
// @Success 204 {string} string ""
// @Router /medications/{medID} [delete]
func removeMedicationHandler(svc *Service) http.HandlerFunc {
	// Id inexistente también responde 204: remove es no-op silencioso.
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Remove(r.Context(), chi.URLParam(r, "medID"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func toMedicationResponse(med Medication) medicationResponse {
	segs := make([]string, 0, len(med.Segments))
	for _, seg := range med.Segments {
		segs = append(segs, string(seg))
	}

	return medicationResponse{
		ID:            med.ID,
		Name:          med.Name,
		DoseAmount:    med.DoseAmount,
		Segments:      segs,
		TimesPerDay:   med.TimesPerDay,
		DoseTimes:     med.DoseTimes,
		SegmentsLabel: segments.FormatLabel(med.Segments),
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
