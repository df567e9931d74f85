package segments

import (
	"fmt"
	"sort"
	"strings"
)

// ID identifica un segmento del día.
// @Enum morning, day, evening, night
type ID string

const (
	Morning ID = "morning"
	Day     ID = "day"
	Evening ID = "evening"
	Night   ID = "night"
)

// Segment es una entrada del catálogo estático. Inmutable en runtime.
// Label es texto visible al usuario (la app original es finlandesa).
type Segment struct {
	ID     ID     `json:"id"`
	Label  string `json:"label"`
	Window string `json:"window"` // "HH–HH", en-dash
	Icon   string `json:"icon"`   // nombre Ionicons
}

// NoSegmentsLabel es el sentinel para un set vacío (nunca string vacío).
const NoSegmentsLabel = "Ei valittuja jaksoja"

// catalog en orden canónico: morning, day, evening, night.
var catalog = []Segment{
	{ID: Morning, Label: "Aamu", Window: "06–12", Icon: "sunny-outline"},
	{ID: Day, Label: "Päivä", Window: "12–18", Icon: "partly-sunny-outline"},
	{ID: Evening, Label: "Ilta", Window: "18–24", Icon: "moon-outline"},
	{ID: Night, Label: "Yö", Window: "00–06", Icon: "moon-outline"},
}

var orderIndex = func() map[ID]int {
	idx := make(map[ID]int, len(catalog))
	for i, seg := range catalog {
		idx[seg.ID] = i
	}
	return idx
}()

// List devuelve el catálogo en orden canónico (copia defensiva).
func List() []Segment {
	out := make([]Segment, len(catalog))
	copy(out, catalog)
	return out
}

func IsValid(id ID) bool {
	_, ok := orderIndex[id]
	return ok
}

// LabelOf devuelve el label; para un id desconocido devuelve el id crudo
// (fallback visible, no null silencioso).
func LabelOf(id ID) string {
	if i, ok := orderIndex[id]; ok {
		return catalog[i].Label
	}
	return string(id)
}

// WindowOf devuelve la ventana horaria; vacío para id desconocido.
func WindowOf(id ID) string {
	if i, ok := orderIndex[id]; ok {
		return catalog[i].Window
	}
	return ""
}

// IconOf devuelve el nombre de ícono; vacío para id desconocido.
func IconOf(id ID) string {
	if i, ok := orderIndex[id]; ok {
		return catalog[i].Icon
	}
	return ""
}

// CompareOrder ordena según el orden canónico. Ids desconocidos van al final.
func CompareOrder(a, b ID) int {
	return rank(a) - rank(b)
}

func rank(id ID) int {
	if i, ok := orderIndex[id]; ok {
		return i
	}
	return len(catalog)
}

// SortCanonical devuelve una copia ordenada canónicamente.
func SortCanonical(ids []ID) []ID {
	out := make([]ID, len(ids))
	copy(out, ids)
	sort.SliceStable(out, func(i, j int) bool {
		return CompareOrder(out[i], out[j]) < 0
	})
	return out
}

// FormatLabel arma el texto legible para un set de segmentos, ej.
// [morning, evening] -> "Aamu, Ilta (2x päivässä)".
// Set vacío devuelve el sentinel NoSegmentsLabel.
func FormatLabel(ids []ID) string {
	if len(ids) == 0 {
		return NoSegmentsLabel
	}

	sorted := SortCanonical(ids)
	labels := make([]string, 0, len(sorted))
	for _, id := range sorted {
		labels = append(labels, LabelOf(id))
	}

	return fmt.Sprintf("%s (%dx päivässä)", strings.Join(labels, ", "), len(labels))
}
