package segments

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fallbackDoseTime se emite cuando la ventana falta o no parsea.
const fallbackDoseTime = "08:00"

// ProjectDoseTimes convierte segmentos en horas nominales "HH:MM":
// el punto medio de la ventana, redondeado a hora entera.
// No se muestra al usuario; existe como placeholder para un futuro
// scheduler de notificaciones. El caller pasa los ids ya ordenados
// canónicamente (una hora por segmento, en ese orden).
func ProjectDoseTimes(ids []ID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, midpointTime(WindowOf(id)))
	}
	return out
}

func midpointTime(window string) string {
	// Formato esperado "06–12" (en-dash) o "06-12" (guión).
	parts := strings.Split(strings.ReplaceAll(window, "–", "-"), "-")
	if len(parts) != 2 {
		return fallbackDoseTime
	}

	start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return fallbackDoseTime
	}

	hour := int(math.Round(float64(start+end) / 2))
	return fmt.Sprintf("%02d:00", hour)
}
