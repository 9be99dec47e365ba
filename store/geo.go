package store

import (
	"sort"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	geojson "github.com/paulmach/go.geojson"

	"cityreport-be/models"
)

const earthRadiusMeters = 6371008.8

// NearbyComplaint is a complaint with its distance from the query point
type NearbyComplaint struct {
	models.Complaint
	DistanceMeters float64 `json:"distanceMeters"`
}

func latLng(c models.Coords) s2.LatLng {
	return s2.LatLngFromDegrees(c.Latitude, c.Longitude)
}

// DistanceMeters is the great-circle distance between two points
func DistanceMeters(a, b models.Coords) float64 {
	return float64(latLng(a).Distance(latLng(b))) * earthRadiusMeters
}

// Nearby returns the complaints within radiusMeters of center, nearest first.
// Equal distances keep input order.
func Nearby(complaints []models.Complaint, center models.Coords, radiusMeters float64) []NearbyComplaint {
	limit := s1.Angle(radiusMeters / earthRadiusMeters)
	origin := latLng(center)
	out := make([]NearbyComplaint, 0)
	for _, c := range complaints {
		d := origin.Distance(latLng(c.Coords))
		if d > limit {
			continue
		}
		out = append(out, NearbyComplaint{Complaint: c, DistanceMeters: float64(d) * earthRadiusMeters})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceMeters < out[j].DistanceMeters
	})
	return out
}

// FeatureCollection renders complaints as map pins. GeoJSON puts longitude first.
func FeatureCollection(complaints []models.Complaint) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range complaints {
		f := geojson.NewPointFeature([]float64{c.Coords.Longitude, c.Coords.Latitude})
		f.ID = c.ID
		f.SetProperty("title", c.Title)
		f.SetProperty("category", string(c.Category))
		f.SetProperty("status", string(c.Status))
		f.SetProperty("referenceNumber", c.ReferenceNumber)
		f.SetProperty("address", c.Address)
		if st, err := c.Status.Style(); err == nil {
			f.SetProperty("color", st.Color)
		}
		fc.AddFeature(f)
	}
	return fc
}
