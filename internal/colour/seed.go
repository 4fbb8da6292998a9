package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
)

// SeedExtractor derives a small seed palette from an image using k-means
// clustering in RGB space. The resulting colours feed role assignment the
// same way caller-supplied brand palettes do.
type SeedExtractor struct {
	maxIterations int
	convergence   float64
	maxSamples    int
}

// NewSeedExtractor creates a SeedExtractor with sensible defaults.
func NewSeedExtractor() *SeedExtractor {
	return &SeedExtractor{
		maxIterations: 20,
		convergence:   2.0,
		maxSamples:    2000,
	}
}

// Extract clusters the image's pixels and returns the cluster centroids as
// seed colours, ordered by cluster size (largest first).
func (e *SeedExtractor) Extract(img image.Image, count int) ([]Colour, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 || count > 64 {
		return nil, fmt.Errorf("seed count must be between 1 and 64, got %d", count)
	}

	points := e.samplePixels(img)
	if len(points) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	// Fewer distinct pixels than requested seeds: return them all.
	unique := dedupePoints(points)
	if count >= len(unique) {
		return pointsToColours(unique), nil
	}

	centroids, weights := e.cluster(points, count)

	// Largest clusters first so the dominant image colours lead the seed.
	order := make([]int, len(centroids))
	for i := range order {
		order[i] = i
	}
	for i := 0; i < len(order)-1; i++ {
		for j := 0; j < len(order)-i-1; j++ {
			if weights[order[j]] < weights[order[j+1]] {
				order[j], order[j+1] = order[j+1], order[j]
			}
		}
	}

	seeds := make([]Colour, len(centroids))
	for i, idx := range order {
		seeds[i] = centroids[idx].colour()
	}
	return seeds, nil
}

// point3D is a point in RGB space.
type point3D struct {
	R, G, B float64
}

func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func (p point3D) colour() Colour {
	rgb := RGB{
		R: uint8(clamp(math.Round(p.R), 0, 255)),
		G: uint8(clamp(math.Round(p.G), 0, 255)),
		B: uint8(clamp(math.Round(p.B), 0, 255)),
	}
	c, _ := FromHex(rgb.Hex())
	return c
}

// samplePixels grid-samples the image down to at most maxSamples points.
func (e *SeedExtractor) samplePixels(img image.Image) []point3D {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()

	step := 1
	if total > e.maxSamples {
		step = max(int(math.Sqrt(float64(total)/float64(e.maxSamples))), 1)
	}

	points := make([]point3D, 0, e.maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			points = append(points, point3D{
				R: float64(r >> 8),
				G: float64(g >> 8),
				B: float64(b >> 8),
			})
			if len(points) >= e.maxSamples {
				return points
			}
		}
	}
	return points
}

func dedupePoints(points []point3D) []point3D {
	seen := make(map[point3D]bool, len(points))
	unique := make([]point3D, 0, len(points))
	for _, p := range points {
		if !seen[p] {
			unique = append(unique, p)
			seen[p] = true
		}
	}
	return unique
}

// cluster runs k-means with k-means++ initialisation.
// Returns centroids and their normalised cluster weights.
func (e *SeedExtractor) cluster(points []point3D, k int) ([]point3D, []float64) {
	centroids := e.initCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recalculate(points, assignments, k)
		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next
		if movement/float64(k) < e.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(assignments))
	}
	return centroids, weights
}

// initCentroids seeds centroids with k-means++: each subsequent centroid is
// picked with probability proportional to its squared distance from the
// nearest existing centroid.
func (e *SeedExtractor) initCentroids(points []point3D, k int) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rand.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := p.distance(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Remaining points coincide with existing centroids; perturb.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rand.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}
	return centroids
}

func nearestCentroid(p point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := p.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func recalculate(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)
	for i, p := range points {
		a := assignments[i]
		sums[a].R += p.R
		sums[a].G += p.G
		sums[a].B += p.B
		counts[a]++
	}

	centroids := make([]point3D, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rand.Intn(len(points))]
		}
	}
	return centroids
}

func pointsToColours(points []point3D) []Colour {
	colours := make([]Colour, len(points))
	for i, p := range points {
		colours[i] = p.colour()
	}
	return colours
}
