package segments

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Route("/segments", func(sr chi.Router) {
		sr.Get("/", listSegmentsHandler())
		sr.Get("/label", formatLabelHandler())
	})
}

type labelResponse struct {
	Label string `json:"label"`
}

// listSegmentsHandler godoc
// @Summary Catálogo de segmentos del día en orden canónico
// @Produce json
// @Success 200 {array} segments.Segment
// @Router /segments [get]
func listSegmentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, List())
	}
}

// formatLabelHandler godoc
// @Summary Texto legible para un set de segmentos (?ids=morning,evening)
// @Produce json
// @Success 200 {object} segments.labelResponse
// @Router /segments/label [get]
func formatLabelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.URL.Query().Get("ids"))

		ids := make([]ID, 0)
		if raw != "" {
			for _, part := range strings.Split(raw, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				ids = append(ids, ID(part))
			}
		}

		writeJSON(w, http.StatusOK, labelResponse{Label: FormatLabel(ids)})
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (misma razón que en el resto del repo: no extraer helpers compartidos antes
// de tiempo).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
