package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	POICollection = "poi"
)

// POI categories of the municipal tourism catalog. The category is an
// explicit attribute of every registered POI and is validated on
// registration.
const (
	CategoryGeopark    = "geopark"
	CategoryHistory    = "history"
	CategoryGastronomy = "gastronomy"
	CategoryNature     = "nature"
	CategoryCulture    = "culture"
)

var poiCategories = map[string]struct{}{
	CategoryGeopark:    {},
	CategoryHistory:    {},
	CategoryGastronomy: {},
	CategoryNature:     {},
	CategoryCulture:    {},
}

// IsValidPOICategory reports whether a category belongs to the catalog.
func IsValidPOICategory(category string) bool {
	_, ok := poiCategories[category]
	return ok
}

type POI struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Alias      string             `bson:"alias" json:"alias"`
	Address    string             `bson:"address" json:"address"`
	Category   string             `bson:"category" json:"category"`
	Location   *GeoJSON           `bson:"location" json:"-"`
	BaseReward int                `bson:"base_reward" json:"base_reward"`
}

// Coordinates returns the POI position in the latitude/longitude form
// used by the proximity gate. Mongo stores GeoJSON as [lon, lat].
func (p POI) Coordinates() Location {
	if p.Location == nil || len(p.Location.Coordinates) != 2 {
		return Location{}
	}
	return Location{
		Latitude:  p.Location.Coordinates[1],
		Longitude: p.Location.Coordinates[0],
	}
}
