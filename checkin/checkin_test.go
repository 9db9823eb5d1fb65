package checkin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/visitcacapava/checkin-api/credential"
	"github.com/visitcacapava/checkin-api/schema"
	"github.com/visitcacapava/checkin-api/store"
)

type catalogStub struct {
	pois map[primitive.ObjectID]*schema.POI
}

func newCatalogStub(pois ...*schema.POI) *catalogStub {
	c := &catalogStub{pois: map[primitive.ObjectID]*schema.POI{}}
	for _, poi := range pois {
		c.pois[poi.ID] = poi
	}
	return c
}

func (c *catalogStub) GetPOI(poiID primitive.ObjectID) (*schema.POI, error) {
	if poi, ok := c.pois[poiID]; ok {
		return poi, nil
	}
	return nil, store.ErrPOINotFound
}

func newPOI(lat, lng float64, category string) *schema.POI {
	return &schema.POI{
		ID:       primitive.NewObjectID(),
		Alias:    "Minas do Camaquã",
		Category: category,
		Location: &schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{lng, lat},
		},
	}
}

func newTestOrchestrator(pois ...*schema.POI) *Orchestrator {
	return NewOrchestrator(
		DefaultConfig([]byte("orchestrator-test-secret")),
		newCatalogStub(pois...),
		store.NewMemoryLedger(store.DefaultLedgerLimits()),
	)
}

// offsetMeters shifts a location north by roughly the given distance.
func offsetMeters(loc schema.Location, meters float64) schema.Location {
	return schema.Location{
		Latitude:  loc.Latitude + meters/111195,
		Longitude: loc.Longitude,
	}
}

func TestRedeemWithTokenEndToEnd(t *testing.T) {
	poi := newPOI(-30.50, -53.49, schema.CategoryGeopark)
	o := newTestOrchestrator(poi)
	t0 := time.Unix(1700000000, 0)

	// mint at the same fixed clock the redemptions run on, so the test
	// is independent of the machine clock
	tokenString, err := credential.IssueAt(poi.ID.Hex(), []byte("orchestrator-test-secret"), t0)
	assert.Nil(t, err)

	// first-time visitor at the POI coordinates, five minutes later
	result, err := o.RedeemWithToken(tokenString, "acct-1", poi.Coordinates(), t0.Add(5*time.Minute))
	assert.Nil(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 50, result.Points)
	assert.NotNil(t, result.Record)

	// immediate repeat hits the cooldown and awards nothing
	result, err = o.RedeemWithToken(tokenString, "acct-1", poi.Coordinates(), t0.Add(6*time.Minute))
	assert.Nil(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, ReasonCooldownActive, result.Reason)
	assert.True(t, result.Remaining > 0)
}

func TestRedeemWithTokenFailureReasons(t *testing.T) {
	poi := newPOI(-30.50, -53.49, schema.CategoryGeopark)
	o := newTestOrchestrator(poi)
	now := time.Now()

	tokenString, err := o.IssueToken(poi.ID.Hex())
	assert.Nil(t, err)

	result, err := o.RedeemWithToken("garbage", "acct-1", poi.Coordinates(), now)
	assert.Nil(t, err)
	assert.Equal(t, ReasonMalformedToken, result.Reason)

	result, err = o.RedeemWithToken(tokenString, "acct-1", poi.Coordinates(), now.Add(25*time.Hour))
	assert.Nil(t, err)
	assert.Equal(t, ReasonExpiredToken, result.Reason)

	tampered := tokenString[:len(tokenString)-1] + "0"
	if tampered == tokenString {
		tampered = tokenString[:len(tokenString)-1] + "1"
	}
	result, err = o.RedeemWithToken(tampered, "acct-1", poi.Coordinates(), now)
	assert.Nil(t, err)
	assert.Equal(t, ReasonBadSignature, result.Reason)
}

func TestRedeemWithTokenUnknownPOI(t *testing.T) {
	poi := newPOI(-30.50, -53.49, schema.CategoryGeopark)
	o := newTestOrchestrator(poi)

	tokenString, err := o.IssueToken(poi.ID.Hex())
	assert.Nil(t, err)

	// same secret, but the POI has since left the catalog
	stray := NewOrchestrator(
		DefaultConfig([]byte("orchestrator-test-secret")),
		newCatalogStub(newPOI(-30.51, -53.48, schema.CategoryHistory)),
		store.NewMemoryLedger(store.DefaultLedgerLimits()),
	)

	result, err := stray.RedeemWithToken(tokenString, "acct-1", poi.Coordinates(), time.Now())
	assert.Nil(t, err)
	assert.Equal(t, ReasonUnknownPOI, result.Reason)
}

func TestIssueTokenUnknownPOI(t *testing.T) {
	o := newTestOrchestrator()

	_, err := o.IssueToken(primitive.NewObjectID().Hex())
	assert.Equal(t, store.ErrPOINotFound, err)

	_, err = o.IssueToken("not-an-object-id")
	assert.Equal(t, store.ErrPOINotFound, err)
}

func TestRedeemProximityGate(t *testing.T) {
	poi := newPOI(-30.50, -53.49, schema.CategoryGeopark)
	o := newTestOrchestrator(poi)
	now := time.Now()

	tokenString, err := o.IssueToken(poi.ID.Hex())
	assert.Nil(t, err)

	// 150 m away with a 100 m radius fails and reports the distance
	result, err := o.RedeemWithToken(tokenString, "acct-1", offsetMeters(poi.Coordinates(), 150), now)
	assert.Nil(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, ReasonOutOfRange, result.Reason)
	assert.InDelta(t, 150, result.DistanceMeters, 1)

	// 99 m passes the token gate
	result, err = o.RedeemWithToken(tokenString, "acct-1", offsetMeters(poi.Coordinates(), 99), now)
	assert.Nil(t, err)
	assert.True(t, result.Success)
}

func TestRedeemByProximity(t *testing.T) {
	poi := newPOI(-30.50, -53.49, schema.CategoryNature)
	o := newTestOrchestrator(poi)
	now := time.Now()

	// 99 m is inside the token radius but outside the proximity radius
	result, err := o.RedeemByProximity(poi.ID.Hex(), "acct-1", offsetMeters(poi.Coordinates(), 99), now)
	assert.Nil(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, ReasonOutOfRange, result.Reason)

	result, err = o.RedeemByProximity(poi.ID.Hex(), "acct-1", offsetMeters(poi.Coordinates(), 50), now)
	assert.Nil(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 20, result.Points) // 10 proximity base, doubled for first visit
}

func TestRedeemDailyLimit(t *testing.T) {
	pois := make([]*schema.POI, 0, 21)
	for i := 0; i < 21; i++ {
		pois = append(pois, newPOI(-30.50, -53.49, schema.CategoryNature))
	}
	o := newTestOrchestrator(pois...)
	now := time.Date(2020, 5, 10, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 20; i++ {
		result, err := o.RedeemByProximity(pois[i].ID.Hex(), "acct-1", pois[i].Coordinates(), now.Add(time.Duration(i)*time.Minute))
		assert.Nil(t, err)
		assert.True(t, result.Success)
	}

	// the 21st attempt of the day fails regardless of POI and cooldown
	result, err := o.RedeemByProximity(pois[20].ID.Hex(), "acct-1", pois[20].Coordinates(), now.Add(21*time.Minute))
	assert.Nil(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, ReasonDailyLimitReached, result.Reason)
}

func TestRedeemBadgeAward(t *testing.T) {
	pois := []*schema.POI{
		newPOI(-30.50, -53.49, schema.CategoryGeopark),
		newPOI(-30.51, -53.48, schema.CategoryGeopark),
		newPOI(-30.52, -53.47, schema.CategoryGeopark),
	}
	o := newTestOrchestrator(pois...)
	now := time.Unix(1700000000, 0)

	for i, poi := range pois {
		result, err := o.RedeemByProximity(poi.ID.Hex(), "acct-1", poi.Coordinates(), now.Add(time.Duration(i)*time.Hour))
		assert.Nil(t, err)
		assert.True(t, result.Success)
		if i < 2 {
			assert.Equal(t, "", result.Badge)
		} else {
			assert.Equal(t, "geopark-explorer", result.Badge)
		}
	}
}
