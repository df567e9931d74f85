package settings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/settings", func(sr chi.Router) {
		sr.Get("/", getSettingsHandler(svc))
		sr.Put("/", updateSettingsHandler(svc))
	})
}

type updateSettingsRequest struct {
	// Punteros para update parcial: nil = no tocar.
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	ThemeMode            *string `json:"themeMode"`
}

// getSettingsHandler godoc
// @Summary Ajustes vigentes (default-merge sobre lo persistido)
// @Produce json
// @Success 200 {object} settings.Settings
// @Router /settings [get]
func getSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Get())
	}
}

// updateSettingsHandler godoc
// @Summary Actualiza ajustes (campos ausentes no se tocan)
// @Accept json
// @Produce json
// @Success 200 {object} settings.Settings
// @Failure 400 {string} string "invalid input"
// @Router /settings [put]
func updateSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var tm *ThemeMode
		if req.ThemeMode != nil {
			v := ThemeMode(*req.ThemeMode)
			tm = &v
		}

		updated, err := svc.Update(r.Context(), UpdateInput{
			NotificationsEnabled: req.NotificationsEnabled,
			ThemeMode:            tm,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
