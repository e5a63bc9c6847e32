// Package region groups a finished grid's floor tiles into spawn regions by
// bucketing a coherent noise field.
//
// This is a noise-bucket approximation of a Voronoi partition, not a true
// geometric one: tiles share a region when their noise samples quantize to
// the same integer, so regions follow the noise contours rather than seed
// cells. Spawn density was tuned against this approximation; keep it.
//
// The field is Perlin gradient noise rather than cellular (Worley) noise.
// Worley contours would hug seed cells more closely, but the bucketing only
// needs spatially coherent values, and the quantization step erases the
// difference in flavor. Swapping noise types would reshuffle region sizes
// and with them the spawn counts.
package region

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/samdwyer/delve/internal/world"
)

const (
	// Noise parameters. Frequency roughly matches one region per 12-tile
	// blob on the default map; scale spreads samples across enough integer
	// buckets that neighboring blobs rarely collide.
	alpha     = 2.0
	beta      = 2.0
	octaves   = 3
	frequency = 0.08
	scale     = 10240.0
)

// Map relates a region id to the floor-tile indices it owns, in the order
// they were scanned (row-major).
type Map map[int][]int

// Partition samples seeded coherent noise at every interior floor tile and
// groups tiles whose quantized samples match. Every interior floor tile lands
// in exactly one region. The rng seeds the noise field, consuming one roll.
func Partition(g *world.Grid, rng *rand.Rand) Map {
	noise := perlin.NewPerlin(alpha, beta, octaves, int64(rng.Intn(65536)+1))

	areas := make(Map)
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			idx := g.Index(x, y)
			if g.Tiles[idx] != world.TileFloor {
				continue
			}
			sample := noise.Noise2D(float64(x)*frequency, float64(y)*frequency)
			id := int(sample * scale)
			areas[id] = append(areas[id], idx)
		}
	}

	return areas
}
