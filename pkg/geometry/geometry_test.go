package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCentroidAndBounds(t *testing.T) {
	square := []Point{{0, 0}, {0, 2}, {2, 2}, {2, 0}}

	c, b, err := DeriveCentroidAndBounds(square)
	require.NoError(t, err)
	assert.Equal(t, Point{Lat: 1, Lng: 1}, c)
	assert.Equal(t, Bounds{MinLat: 0, MaxLat: 2, MinLng: 0, MaxLng: 2}, b)
}

func TestDeriveCentroidAndBoundsEmpty(t *testing.T) {
	_, _, err := DeriveCentroidAndBounds(nil)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestEstimateAreaTriangle(t *testing.T) {
	tri := []Point{{0, 0}, {0, 1}, {1, 0}}
	// planar area 0.5 * 11100
	assert.Equal(t, 5550.0, EstimateAreaHectares(tri))
}

func TestEstimateAreaTooFewPoints(t *testing.T) {
	assert.Equal(t, 0.0, EstimateAreaHectares([]Point{{0, 0}, {0, 1}}))
	assert.Equal(t, 0.0, EstimateAreaHectares(nil))
}

func TestEstimateAreaMinimumFloor(t *testing.T) {
	tiny := []Point{{0, 0}, {0, 1e-6}, {1e-6, 0}}
	assert.Equal(t, 0.01, EstimateAreaHectares(tiny))
}

func TestEstimateAreaOrientationInsensitive(t *testing.T) {
	poly := []Point{{0, 0}, {0, 2}, {1, 3}, {2, 2}, {2, 0}}
	want := EstimateAreaHectares(poly)

	// cyclic rotations
	for shift := 1; shift < len(poly); shift++ {
		rotated := append(append([]Point{}, poly[shift:]...), poly[:shift]...)
		assert.Equal(t, want, EstimateAreaHectares(rotated), "rotation by %d", shift)
	}

	// reversed order
	reversed := make([]Point, len(poly))
	for i, p := range poly {
		reversed[len(poly)-1-i] = p
	}
	assert.Equal(t, want, EstimateAreaHectares(reversed))
}

func TestParsePolygon(t *testing.T) {
	pts, err := ParsePolygon(`[[55.7, 37.6], [55.8, 37.6], [55.8, 37.7]]`)
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, Point{Lat: 55.7, Lng: 37.6}, pts[0])

	_, err = ParsePolygon(`not json`)
	assert.Error(t, err)

	_, err = ParsePolygon(`[[0,0],[1,1]]`)
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = ParsePolygon(`[[95,0],[0,1],[1,0]]`)
	assert.ErrorIs(t, err, ErrCoordinateRange)

	_, err = ParsePolygon(`[[0,0,0],[0,1],[1,0]]`)
	assert.Error(t, err)
}
