package coloring

import (
	"fmt"

	"github.com/finito-solver/finito/pkg/finito"
	"github.com/finito-solver/finito/pkg/finito/constraint"
)

// palette maps color indices to display names. Indices beyond the
// palette fall back to a numbered label.
var palette = []string{"red", "green", "blue", "yellow", "purple", "orange", "cyan", "magenta"}

// ColorName returns the display label for a color index.
func ColorName(index int) string {
	if index >= 0 && index < len(palette) {
		return palette[index]
	}
	return fmt.Sprintf("color-%d", index)
}

// Map is a graph-coloring problem: named regions and the pairs that
// must not share a color.
type Map struct {
	Regions  []string
	Adjacent [][2]string
}

// Australia returns the classic seven-region map of Australia.
func Australia() Map {
	return Map{
		Regions: []string{"WA", "NT", "SA", "Q", "NSW", "V", "T"},
		Adjacent: [][2]string{
			{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}, {"NT", "Q"},
			{"SA", "Q"}, {"SA", "NSW"}, {"SA", "V"}, {"Q", "NSW"},
			{"NSW", "V"},
		},
	}
}

// Encode builds the constraint instance: one variable per region with
// domain [0,k-1] and an inequality per adjacent pair. No valid
// coloring is preferred over another; the decoded result is whichever
// model the backend returns.
func (m Map) Encode(colors int) (*finito.Instance, error) {
	instance := finito.NewInstance()
	for _, region := range m.Regions {
		if err := instance.Declare(finito.Identifier(region), 0, colors-1); err != nil {
			return nil, err
		}
	}
	for _, pair := range m.Adjacent {
		if err := instance.Assert(constraint.NotEqual(finito.Identifier(pair[0]), finito.Identifier(pair[1]))); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Decode maps each region's model value to its color name, in region
// order.
func (m Map) Decode(model finito.Model) map[string]string {
	colors := make(map[string]string, len(m.Regions))
	for _, region := range m.Regions {
		colors[region] = ColorName(model[finito.Identifier(region)])
	}
	return colors
}
