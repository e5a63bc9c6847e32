package mapgen

import (
	"fmt"
	"math/rand"
	"sort"
)

// Factory constructs an unbuilt strategy for the given depth.
type Factory func(depth int) Builder

var factories = map[string]Factory{
	"simple-rooms":              func(d int) Builder { return NewSimpleRooms(d) },
	"bsp-dungeon":               func(d int) Builder { return NewBSPDungeon(d) },
	"bsp-interior":              func(d int) Builder { return NewBSPInterior(d) },
	"cellular-automata":         func(d int) Builder { return NewCellularAutomata(d) },
	"drunkard-open-area":        func(d int) Builder { return NewDrunkardOpenArea(d) },
	"drunkard-open-halls":       func(d int) Builder { return NewDrunkardOpenHalls(d) },
	"drunkard-winding-passages": func(d int) Builder { return NewDrunkardWindingPassages(d) },
	"maze":                      func(d int) Builder { return NewMaze(d) },
	"dla-walk-inwards":          func(d int) Builder { return NewDLAWalkInwards(d) },
	"dla-walk-outwards":         func(d int) Builder { return NewDLAWalkOutwards(d) },
	"dla-central-attractor":     func(d int) Builder { return NewDLACentralAttractor(d) },
	"dla-insectoid":             func(d int) Builder { return NewDLAInsectoid(d) },
	"voronoi-pythagoras":        func(d int) Builder { return NewVoronoiPythagoras(d) },
	"voronoi-manhattan":         func(d int) Builder { return NewVoronoiManhattan(d) },
	"voronoi-chebyshev":         func(d int) Builder { return NewVoronoiChebyshev(d) },
}

// strategyNames holds the factory keys in sorted order so that random
// selection is reproducible for a given seed.
var strategyNames = func() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// StrategyNames lists every registered strategy, sorted.
func StrategyNames() []string {
	names := make([]string, len(strategyNames))
	copy(names, strategyNames)
	return names
}

// NewStrategy builds the named strategy, or errors if no such strategy is
// registered.
func NewStrategy(name string, depth int) (Builder, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
	return factory(depth), nil
}

func randomStrategy(rng *rand.Rand) string {
	return strategyNames[rng.Intn(len(strategyNames))]
}
