package models

// CategoryID enum
type CategoryID string

const (
	CategoryRoad        CategoryID = "road"
	CategoryTransport   CategoryID = "transport"
	CategoryCleanliness CategoryID = "cleanliness"
	CategoryLighting    CategoryID = "lighting"
	CategoryNoise       CategoryID = "noise"
	CategoryWater       CategoryID = "water"
	CategoryParks       CategoryID = "parks"
)

// FilterAll matches every category or status when used as a filter id.
// It is never stored on a complaint.
const FilterAll = "all"

// CategoryIDs lists every category a complaint can be filed under
var CategoryIDs = []CategoryID{
	CategoryRoad,
	CategoryTransport,
	CategoryCleanliness,
	CategoryLighting,
	CategoryNoise,
	CategoryWater,
	CategoryParks,
}

// Category is a classification tag shown as a filter chip
type Category struct {
	ID    string `bson:"id" json:"id" yaml:"id"`
	Name  string `bson:"name" json:"name" yaml:"name"`
	Icon  string `bson:"icon" json:"icon" yaml:"icon"`
	Color string `bson:"color" json:"color" yaml:"color"`
}
