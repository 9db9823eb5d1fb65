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

func TestListPOINearby(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	poi := testPOI(schema.CategoryNature)
	m.EXPECT().NearbyPOI(5000, schema.Location{
		Latitude:  -30.51,
		Longitude: -53.49,
	}).Return([]schema.POI{*poi}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listPOI)

	req := httptest.NewRequest("GET", "/?latitude=-30.51&longitude=-53.49", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]catalogPOI
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp), "wrong json unmarshal")
	assert.Len(t, jResp["points_of_interest"], 1)
	assert.Equal(t, poi.ID.Hex(), jResp["points_of_interest"][0].ID)
	assert.Equal(t, schema.CategoryNature, jResp["points_of_interest"][0].Category)
}

func TestListPOIBadCoordinates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listPOI)

	req := httptest.NewRequest("GET", "/?latitude=somewhere&longitude=-53.49", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestGetPOINotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	id := primitive.NewObjectID()
	m.EXPECT().GetPOI(id).Return(nil, store.ErrPOINotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:poiID", s.getPOI)

	req := httptest.NewRequest("GET", "/"+id.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp), "wrong json unmarshal")
	assert.Equal(t, int64(1300), jResp.Code)
}

func TestAddPOIUnknownCategory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().AddPOI("Minas do Camaquã", "", "shopping", 0, -53.49, -30.51).
		Return(nil, store.ErrUnknownCategory).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.addPOI)

	body := `{"alias":"Minas do Camaquã","category":"shopping","location":{"latitude":-30.51,"longitude":-53.49}}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp), "wrong json unmarshal")
	assert.Equal(t, int64(1301), jResp.Code)
}

func TestIssueToken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	poi := testPOI(schema.CategoryCulture)
	m.EXPECT().GetPOI(poi.ID).Return(poi, nil).Times(1)

	s := Server{
		mongoStore: m,
		orchestrator: checkin.NewOrchestrator(
			checkin.DefaultConfig([]byte("api-test-secret")),
			m,
			store.NewMemoryLedger(store.DefaultLedgerLimits()),
		),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.issueToken)

	body := `{"poi_id":"` + poi.ID.Hex() + `"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]string
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp), "wrong json unmarshal")
	assert.True(t, strings.HasPrefix(jResp["token"], "VC:"+poi.ID.Hex()+":"), "wrong token format")
}

func TestIssueTokenUnknownPOI(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	id := primitive.NewObjectID()
	m.EXPECT().GetPOI(id).Return(nil, store.ErrPOINotFound).Times(1)

	s := Server{
		mongoStore: m,
		orchestrator: checkin.NewOrchestrator(
			checkin.DefaultConfig([]byte("api-test-secret")),
			m,
			store.NewMemoryLedger(store.DefaultLedgerLimits()),
		),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.issueToken)

	body := `{"poi_id":"` + id.Hex() + `"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}
