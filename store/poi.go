package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/visitcacapava/checkin-api/schema"
)

var (
	ErrPOINotFound     = fmt.Errorf("poi not found")
	ErrUnknownCategory = fmt.Errorf("unknown poi category")
)

type POI interface {
	AddPOI(alias, address, category string, baseReward int, lon, lat float64) (*schema.POI, error)
	GetPOI(poiID primitive.ObjectID) (*schema.POI, error)
	ListPOI() ([]schema.POI, error)
	NearbyPOI(distance int, cords schema.Location) ([]schema.POI, error)
}

// AddPOI registers a catalog POI, reusing an existing record when one
// already sits at the exact coordinates. An empty address is filled by
// reverse geocoding when a geo client is configured.
func (m *mongoDB) AddPOI(alias, address, category string, baseReward int, lon, lat float64) (*schema.POI, error) {
	if !schema.IsValidPOICategory(category) {
		return nil, ErrUnknownCategory
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.POICollection)

	var poi schema.POI
	query := bson.M{
		"location.coordinates.0": lon,
		"location.coordinates.1": lat,
	}
	if err := c.FindOne(ctx, query).Decode(&poi); err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, err
		}

		if address == "" && m.geoClient != nil {
			resolved, err := m.geoClient.Get(schema.Location{Latitude: lat, Longitude: lon})
			if err != nil {
				log.WithField("prefix", mongoLogPrefix).WithError(err).Warn("resolve poi address")
			} else if len(resolved) > 0 {
				address = resolved[0].FormattedAddress
			}
		}

		poi = schema.POI{
			ID:       primitive.NewObjectID(),
			Alias:    alias,
			Address:  address,
			Category: category,
			Location: &schema.GeoJSON{
				Type:        "Point",
				Coordinates: []float64{lon, lat},
			},
			BaseReward: baseReward,
		}
		if _, err := c.InsertOne(ctx, poi); err != nil {
			return nil, err
		}
	}

	return &poi, nil
}

// GetPOI looks up a single catalog POI
func (m *mongoDB) GetPOI(poiID primitive.ObjectID) (*schema.POI, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.POICollection)

	var poi schema.POI
	if err := c.FindOne(ctx, bson.M{"_id": poiID}).Decode(&poi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPOINotFound
		}
		return nil, err
	}

	return &poi, nil
}

// ListPOI returns the whole catalog
func (m *mongoDB) ListPOI() ([]schema.POI, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.POICollection)

	cur, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	pois := make([]schema.POI, 0)
	for cur.Next(ctx) {
		var poi schema.POI
		if err := cur.Decode(&poi); err != nil {
			return nil, err
		}
		pois = append(pois, poi)
	}

	return pois, nil
}

// NearbyPOI returns catalog POIs within a distance in meters of a
// position, nearest first.
func (m *mongoDB) NearbyPOI(distance int, cords schema.Location) ([]schema.POI, error) {
	query := distanceQuery(distance, cords)
	c := m.client.Database(m.database).Collection(schema.POICollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, query)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby poi with error: %s", err)
		return nil, fmt.Errorf("nearby poi query with error: %s", err)
	}
	defer cur.Close(ctx)

	pois := make([]schema.POI, 0)
	for cur.Next(ctx) {
		var poi schema.POI
		if err := cur.Decode(&poi); err != nil {
			return nil, fmt.Errorf("nearby poi query decode record with error: %s", err)
		}
		pois = append(pois, poi)
	}

	return pois, nil
}

// reference: https://docs.mongodb.com/manual/reference/operator/query/nearSphere/#op._S_nearSphere
func distanceQuery(distance int, cords schema.Location) bson.D {
	return bson.D{{
		Key: "location",
		Value: bson.D{{
			Key: "$nearSphere",
			Value: bson.D{{
				Key: "$geometry",
				Value: bson.D{{
					Key:   "type",
					Value: "Point",
				}, {
					Key:   "coordinates",
					Value: bson.A{cords.Longitude, cords.Latitude},
				}},
			}, {
				Key:   "$maxDistance",
				Value: distance,
			}},
		}},
	}}
}
