package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/visitcacapava/checkin-api/schema"
	"github.com/visitcacapava/checkin-api/store"
)

type catalogPOI struct {
	ID         string           `json:"id"`
	Alias      string           `json:"alias"`
	Address    string           `json:"address"`
	Category   string           `json:"category"`
	Location   *schema.Location `json:"location"`
	BaseReward int              `json:"base_reward,omitempty"`
}

func toCatalogPOI(poi schema.POI) catalogPOI {
	cords := poi.Coordinates()
	return catalogPOI{
		ID:         poi.ID.Hex(),
		Alias:      poi.Alias,
		Address:    poi.Address,
		Category:   poi.Category,
		Location:   &cords,
		BaseReward: poi.BaseReward,
	}
}

// listPOI returns the whole catalog, or the POIs around a position when
// latitude/longitude query parameters are present.
func (s *Server) listPOI(c *gin.Context) {
	latParam, hasLat := c.GetQuery("latitude")
	lngParam, hasLng := c.GetQuery("longitude")

	var pois []schema.POI
	var err error

	if hasLat || hasLng {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lng, lngErr := strconv.ParseFloat(lngParam, 64)
		if latErr != nil || lngErr != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}

		radius, radiusErr := strconv.Atoi(c.DefaultQuery("radius", "5000"))
		if radiusErr != nil || radius <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}

		pois, err = s.mongoStore.NearbyPOI(radius, schema.Location{Latitude: lat, Longitude: lng})
	} else {
		pois, err = s.mongoStore.ListPOI()
	}

	if err != nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorStorageUnavailable, err)
		return
	}

	result := make([]catalogPOI, 0, len(pois))
	for _, poi := range pois {
		result = append(result, toCatalogPOI(poi))
	}

	c.JSON(http.StatusOK, gin.H{"points_of_interest": result})
}

// getPOI returns a single catalog entry
func (s *Server) getPOI(c *gin.Context) {
	poiID, err := primitive.ObjectIDFromHex(c.Param("poiID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	poi, err := s.mongoStore.GetPOI(poiID)
	if err != nil {
		switch err {
		case store.ErrPOINotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownPOI)
		default:
			abortWithEncoding(c, http.StatusServiceUnavailable, errorStorageUnavailable, err)
		}
		return
	}

	c.JSON(http.StatusOK, toCatalogPOI(*poi))
}

// addPOI registers a new catalog POI. Admin only.
func (s *Server) addPOI(c *gin.Context) {
	var body struct {
		Alias      string           `json:"alias" binding:"required"`
		Address    string           `json:"address"`
		Category   string           `json:"category" binding:"required"`
		Location   *schema.Location `json:"location" binding:"required"`
		BaseReward int              `json:"base_reward"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	poi, err := s.mongoStore.AddPOI(body.Alias, body.Address, body.Category, body.BaseReward,
		body.Location.Longitude, body.Location.Latitude)
	if err != nil {
		switch err {
		case store.ErrUnknownCategory:
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownCategory)
		default:
			abortWithEncoding(c, http.StatusServiceUnavailable, errorStorageUnavailable, err)
		}
		return
	}

	c.JSON(http.StatusOK, toCatalogPOI(*poi))
}
