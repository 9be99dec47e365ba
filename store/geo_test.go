package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityreport-be/models"
)

func TestDistanceMeters(t *testing.T) {
	// Galata Tower to Istiklal Avenue, roughly 200 m apart
	d := DistanceMeters(
		models.Coords{Latitude: 41.0351, Longitude: 28.9840},
		models.Coords{Latitude: 41.0369, Longitude: 28.9850},
	)
	assert.InDelta(t, 217, d, 10)
	assert.Zero(t, DistanceMeters(models.Coords{Latitude: 1, Longitude: 2}, models.Coords{Latitude: 1, Longitude: 2}))
}

func TestNearby(t *testing.T) {
	c := Seed().Complaints
	galata := models.Coords{Latitude: 41.0351, Longitude: 28.9840}

	got := Nearby(c, galata, 500)
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Less(t, got[0].DistanceMeters, got[1].DistanceMeters)

	// complaint 1 sits about 3 km south
	assert.Len(t, Nearby(c, galata, 5000), 3)
	assert.Empty(t, Nearby(c, models.Coords{Latitude: 39.92, Longitude: 32.85}, 1000))
}

func TestFeatureCollection(t *testing.T) {
	fc := FeatureCollection(Seed().Complaints)
	require.Len(t, fc.Features, 3)

	f := fc.Features[1]
	assert.Equal(t, "2", f.ID)
	assert.Equal(t, []float64{28.9850, 41.0369}, f.Geometry.Point)
	assert.Equal(t, "awaiting", f.Properties["status"])
	assert.Equal(t, "#F59E0B", f.Properties["color"])

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"FeatureCollection"`)
}
