package gradient

import (
	"fmt"
	"image/color"

	"github.com/rs/zerolog/log"

	"github.com/fpang/snapstudio/internal/snap"
)

// Resolve turns background settings into a concrete fill descriptor.
// An unresolvable gradient reference returns snap.ErrInvalidBackground;
// an unknown preset id is an error, never a silent fallback.
func Resolve(bg snap.BackgroundSettings) (Fill, error) {
	switch bg.Type {
	case snap.BackgroundTransparent:
		return Transparent{}, nil

	case snap.BackgroundSolid:
		hex := bg.Color
		if hex == "" {
			hex = "#ffffff"
		}
		c, err := snap.ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: solid color: %v", snap.ErrInvalidBackground, err)
		}
		return Solid{Color: c}, nil

	case snap.BackgroundGradient:
		if bg.Custom != nil {
			return resolveCustom(bg.Custom)
		}
		id := bg.GradientID
		if id == "" {
			log.Debug().Str("preset", DefaultPresetID).Msg("No gradient reference, using default preset")
			id = DefaultPresetID
		}
		preset, ok := Preset(id)
		if !ok {
			return nil, fmt.Errorf("%w: unknown gradient preset %q", snap.ErrInvalidBackground, id)
		}
		stops, err := parseStops(preset.Colors)
		if err != nil {
			return nil, fmt.Errorf("%w: preset %q: %v", snap.ErrInvalidBackground, id, err)
		}
		return LinearGradient{Stops: stops, Angle: preset.Angle}, nil

	default:
		return nil, fmt.Errorf("%w: unknown background type %q", snap.ErrInvalidBackground, bg.Type)
	}
}

// resolveCustom builds a fill from a user-supplied gradient.
func resolveCustom(g *snap.CustomGradient) (Fill, error) {
	if len(g.Colors) < 2 {
		return nil, fmt.Errorf("%w: custom gradient needs at least 2 colors, got %d",
			snap.ErrInvalidBackground, len(g.Colors))
	}
	stops, err := parseStops(g.Colors)
	if err != nil {
		return nil, fmt.Errorf("%w: custom gradient: %v", snap.ErrInvalidBackground, err)
	}
	if g.Type == snap.GradientRadial {
		// Angle is not read for radial gradients.
		return RadialGradient{Stops: stops}, nil
	}
	return LinearGradient{Stops: stops, Angle: g.Angle}, nil
}

// parseStops parses hex colors into evenly spaced stops.
func parseStops(hexes []string) ([]Stop, error) {
	colors := make([]color.NRGBA, len(hexes))
	for i, hex := range hexes {
		c, err := snap.ParseHexColor(hex)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return EvenStops(colors), nil
}
