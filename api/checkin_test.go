package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/visitcacapava/checkin-api/api/mocks"
	"github.com/visitcacapava/checkin-api/checkin"
	"github.com/visitcacapava/checkin-api/schema"
	"github.com/visitcacapava/checkin-api/store"
)

func testPOI(category string) *schema.POI {
	return &schema.POI{
		ID:       primitive.NewObjectID(),
		Alias:    "Pedra do Segredo",
		Category: category,
		Location: &schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{-53.4914, -30.5469},
		},
	}
}

func testAccount(number string) *schema.Account {
	return &schema.Account{
		AccountNumber: number,
		Profile: schema.AccountProfile{
			AccountNumber: number,
		},
	}
}

func TestCheckinCreateWithToken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCheckinCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	poi := testPOI(schema.CategoryGeopark)
	cords := poi.Coordinates()

	secret := []byte("api-test-secret")
	orchestrator := checkin.NewOrchestrator(
		checkin.DefaultConfig(secret),
		m,
		store.NewMemoryLedger(store.DefaultLedgerLimits()),
	)

	s := Server{
		store:        a,
		mongoStore:   m,
		orchestrator: orchestrator,
	}

	// once for issuing the token, once for the redemption itself
	m.EXPECT().GetPOI(poi.ID).Return(poi, nil).Times(2)
	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount("account-1"), nil).Times(1)
	a.EXPECT().UpdateAccountGeoPosition(gomock.Any(), cords.Latitude, cords.Longitude).Return(nil).Times(1)

	tokenString, err := orchestrator.IssueToken(poi.ID.Hex())
	assert.Nil(t, err, "issue token")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.checkinCreate)

	body, _ := json.Marshal(checkinRequest{
		Method:   string(schema.CheckinMethodToken),
		Token:    tokenString,
		Location: &cords,
	})
	req := httptest.NewRequest("POST", "/", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp checkinResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.True(t, resp.Success, "redemption should succeed")
	assert.Equal(t, 50, resp.Points, "first visit doubles the token base")
	assert.Empty(t, resp.Reason)
}

func TestCheckinCreateOutOfRange(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCheckinCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	poi := testPOI(schema.CategoryHistory)
	cords := poi.Coordinates()
	// roughly 550 m north of the POI
	farAway := schema.Location{
		Latitude:  cords.Latitude + 0.005,
		Longitude: cords.Longitude,
	}

	secret := []byte("api-test-secret")
	orchestrator := checkin.NewOrchestrator(
		checkin.DefaultConfig(secret),
		m,
		store.NewMemoryLedger(store.DefaultLedgerLimits()),
	)

	s := Server{
		store:        a,
		mongoStore:   m,
		orchestrator: orchestrator,
	}

	m.EXPECT().GetPOI(poi.ID).Return(poi, nil).Times(2)
	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount("account-1"), nil).Times(1)
	a.EXPECT().UpdateAccountGeoPosition(gomock.Any(), farAway.Latitude, farAway.Longitude).Return(nil).Times(1)

	tokenString, err := orchestrator.IssueToken(poi.ID.Hex())
	assert.Nil(t, err, "issue token")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.checkinCreate)

	body, _ := json.Marshal(checkinRequest{
		Method:   string(schema.CheckinMethodToken),
		Token:    tokenString,
		Location: &farAway,
	})
	req := httptest.NewRequest("POST", "/", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp checkinResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.False(t, resp.Success, "redemption should fail")
	assert.Equal(t, int64(1403), resp.Code, "wrong reason code")
	assert.Equal(t, 0, resp.Points)
}

func TestCheckinCreateBadToken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCheckinCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
		orchestrator: checkin.NewOrchestrator(
			checkin.DefaultConfig([]byte("api-test-secret")),
			m,
			store.NewMemoryLedger(store.DefaultLedgerLimits()),
		),
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount("account-1"), nil).Times(1)
	a.EXPECT().UpdateAccountGeoPosition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.checkinCreate)

	body, _ := json.Marshal(checkinRequest{
		Method:   string(schema.CheckinMethodToken),
		Token:    "not-a-checkin-token",
		Location: &schema.Location{Latitude: -30.5469, Longitude: -53.4914},
	})
	req := httptest.NewRequest("POST", "/", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp checkinResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.False(t, resp.Success)
	assert.Equal(t, int64(1400), resp.Code, "wrong reason code")
}

func TestCheckinCreateUnknownMethod(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCheckinCore(ctl)

	s := Server{store: a}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount("account-1"), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.checkinCreate)

	body, _ := json.Marshal(checkinRequest{
		Method:   "telepathy",
		Location: &schema.Location{Latitude: -30.5469, Longitude: -53.4914},
	})
	req := httptest.NewRequest("POST", "/", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestCheckinList(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCheckinCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount("account-1"), nil).Times(1)
	m.EXPECT().ListCheckins("account-1", int64(20), int64(0)).Return([]schema.CheckinRecord{
		{
			ID:            primitive.NewObjectID(),
			AccountNumber: "account-1",
			Method:        schema.CheckinMethodToken,
			Points:        50,
		},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/", s.checkinList)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]schema.CheckinRecord
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp), "wrong json unmarshal")
	assert.Len(t, jResp["checkins"], 1)
	assert.Equal(t, 50, jResp["checkins"][0].Points)
}

func TestCheckinProfile(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCheckinCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount("account-1"), nil).Times(1)
	m.EXPECT().GetCheckinProfile("account-1").Return(&schema.CheckinProfile{
		AccountNumber: "account-1",
		TotalPoints:   135,
		Badges:        []string{"geopark-explorer"},
		Categories:    map[string]int{"geopark": 3, "history": 1},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/", s.checkinProfile)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		TotalPoints int            `json:"total_points"`
		Badges      []string       `json:"badges"`
		Categories  map[string]int `json:"categories"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp), "wrong json unmarshal")
	assert.Equal(t, 135, jResp.TotalPoints)
	assert.Equal(t, []string{"geopark-explorer"}, jResp.Badges)
	assert.Equal(t, 3, jResp.Categories["geopark"])
}
