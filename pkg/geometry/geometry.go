// Package geometry derives centroid, bounding box and an approximate area in
// hectares from a field polygon. Vertices are treated as planar (lat,lng)
// pairs; the hectare conversion is a fixed scalar that does not correct for
// latitude-dependent longitude scaling, so the result is a coarse estimate
// meant for small plots.
package geometry

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidGeometry = errors.New("geometry: polygon has no points")
	ErrTooFewPoints    = errors.New("geometry: polygon needs at least 3 points")
	ErrCoordinateRange = errors.New("geometry: coordinate out of range")
)

// Point is a (lat,lng) polygon vertex.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// hectaresPerPlanarUnit converts shoelace output in squared degrees to
// hectares. Kept exactly as the historical records in the store were
// computed with; replacing it with a geodesic formula would silently change
// every stored area.
const hectaresPerPlanarUnit = 11100

// ParsePolygon decodes a JSON array of [lat,lng] pairs and range-checks every
// coordinate. At least 3 points are required.
func ParsePolygon(raw string) ([]Point, error) {
	var pairs [][]float64
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return nil, fmt.Errorf("geometry: parse polygon: %w", err)
	}
	if len(pairs) < 3 {
		return nil, ErrTooFewPoints
	}
	pts := make([]Point, 0, len(pairs))
	for _, pr := range pairs {
		if len(pr) != 2 {
			return nil, fmt.Errorf("geometry: vertex must be a [lat,lng] pair, got %d values", len(pr))
		}
		if pr[0] < -90 || pr[0] > 90 || pr[1] < -180 || pr[1] > 180 {
			return nil, ErrCoordinateRange
		}
		pts = append(pts, Point{Lat: pr[0], Lng: pr[1]})
	}
	return pts, nil
}

// DeriveCentroidAndBounds returns the arithmetic-mean centroid and the
// axis-aligned bounding box of the vertex list.
func DeriveCentroidAndBounds(poly []Point) (Point, Bounds, error) {
	if len(poly) == 0 {
		return Point{}, Bounds{}, ErrInvalidGeometry
	}
	b := Bounds{MinLat: poly[0].Lat, MaxLat: poly[0].Lat, MinLng: poly[0].Lng, MaxLng: poly[0].Lng}
	var sumLat, sumLng float64
	for _, p := range poly {
		sumLat += p.Lat
		sumLng += p.Lng
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
		b.MinLng = math.Min(b.MinLng, p.Lng)
		b.MaxLng = math.Max(b.MaxLng, p.Lng)
	}
	n := float64(len(poly))
	return Point{Lat: sumLat / n, Lng: sumLng / n}, b, nil
}

// EstimateAreaHectares applies the shoelace formula over the cyclic vertex
// sequence and scales the planar area to hectares, floored at 0.01 and
// rounded to 2 decimals. Fewer than 3 points yields 0.
func EstimateAreaHectares(poly []Point) float64 {
	if len(poly) < 3 {
		return 0
	}
	area := 0.0
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i].Lng*poly[j].Lat - poly[j].Lng*poly[i].Lat
	}
	area = math.Abs(area) / 2

	ha := area * hectaresPerPlanarUnit
	if ha < 0.01 {
		ha = 0.01
	}
	return math.Round(ha*100) / 100
}
