package gradient

import (
	"sort"

	"github.com/fpang/snapstudio/internal/snap"
)

// DefaultPresetID is used when a gradient background names neither a
// preset nor a custom gradient.
const DefaultPresetID = "ocean"

// presets is the fixed registry of built-in gradients, keyed by id.
// Initialized once at process start and never mutated, so concurrent
// renders can read it without locking.
var presets = map[string]snap.GradientPreset{
	"ocean": {
		ID: "ocean", Name: "Ocean",
		Colors: []string{"#2e3192", "#1bffff"}, Angle: 135,
	},
	"sunset": {
		ID: "sunset", Name: "Sunset",
		Colors: []string{"#ff512f", "#f09819"}, Angle: 120,
	},
	"aurora": {
		ID: "aurora", Name: "Aurora",
		Colors: []string{"#00c9ff", "#92fe9d"}, Angle: 160,
	},
	"candy": {
		ID: "candy", Name: "Candy",
		Colors: []string{"#fc466b", "#3f5efb"}, Angle: 45,
	},
	"midnight": {
		ID: "midnight", Name: "Midnight",
		Colors: []string{"#232526", "#414345"}, Angle: 180,
	},
	"forest": {
		ID: "forest", Name: "Forest",
		Colors: []string{"#134e5e", "#71b280"}, Angle: 135,
	},
	"flame": {
		ID: "flame", Name: "Flame",
		Colors: []string{"#f83600", "#f9d423", "#ff0844"}, Angle: 90,
	},
	"lavender": {
		ID: "lavender", Name: "Lavender",
		Colors: []string{"#e0c3fc", "#8ec5fc"}, Angle: 60,
	},
}

// Preset looks up a built-in gradient by id.
func Preset(id string) (snap.GradientPreset, bool) {
	p, ok := presets[id]
	return p, ok
}

// PresetIDs returns all registry ids in sorted order, for CLI help and
// validation messages.
func PresetIDs() []string {
	ids := make([]string, 0, len(presets))
	for id := range presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
