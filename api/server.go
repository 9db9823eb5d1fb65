package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/visitcacapava/checkin-api/checkin"
	"github.com/visitcacapava/checkin-api/external/geoinfo"
	"github.com/visitcacapava/checkin-api/logmodule"
	"github.com/visitcacapava/checkin-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.CheckinCore
	mongoStore store.MongoStore

	// Check-in pipeline
	orchestrator *checkin.Orchestrator

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundEnqueuer *machinery.Server,
	jwtKey *rsa.PrivateKey,
	geoClient geoinfo.GeoInfo) *Server {

	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		geoClient,
		ledgerLimits(),
	)

	orchestrator := checkin.NewOrchestrator(pipelineConfig(), mongoStore, mongoStore)

	return &Server{
		store:         store.NewCheckinStore(ormDB),
		mongoStore:    mongoStore,
		orchestrator:  orchestrator,
		jwtPrivateKey: jwtKey,
		background:    backgroundEnqueuer,
	}
}

func ledgerLimits() store.LedgerLimits {
	limits := store.DefaultLedgerLimits()
	if d := viper.GetDuration("checkin.cooldown"); d > 0 {
		limits.Cooldown = d
	}
	if cap := viper.GetInt("checkin.dailycap"); cap > 0 {
		limits.DailyCap = cap
	}
	return limits
}

func pipelineConfig() checkin.Config {
	config := checkin.DefaultConfig([]byte(viper.GetString("checkin.secret")))
	if d := viper.GetDuration("checkin.validity"); d > 0 {
		config.ValidityWindow = d
	}
	if r := viper.GetFloat64("checkin.radius.token"); r > 0 {
		config.TokenRadiusMeters = r
	}
	if r := viper.GetFloat64("checkin.radius.proximity"); r > 0 {
		config.ProximityRadiusMeters = r
	}
	if n := viper.GetInt("checkin.badge.threshold"); n > 0 {
		config.BadgeThreshold = n
	}
	return config
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/auth", s.requestJWT)
	apiRoute.POST("/accounts", s.accountRegister)

	// api route other than `/auth` and account registration will apply
	// the following middleware
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateMetadata)
		accountRoute.DELETE("/me", s.accountDelete)
	}

	checkinRoute := apiRoute.Group("/checkins")
	checkinRoute.Use(s.recognizeAccountMiddleware())
	{
		checkinRoute.POST("", s.checkinCreate)
		checkinRoute.GET("", s.checkinList)
	}

	profileRoute := apiRoute.Group("/profile")
	profileRoute.Use(s.recognizeAccountMiddleware())
	{
		profileRoute.GET("", s.checkinProfile)
	}

	// the public catalog is read-only and browsable from the web map
	poiRoute := r.Group("/points-of-interest")
	poiRoute.Use(logmodule.Ginrus("POI"))
	poiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		poiRoute.GET("", s.listPOI)
		poiRoute.GET("/:poiID", s.getPOI)
	}

	kioskRoute := r.Group("/kiosk")
	kioskRoute.Use(logmodule.Ginrus("Kiosk"))
	kioskRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.kiosk")))
	{
		kioskRoute.POST("/tokens", s.issueToken)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/points-of-interest", s.addPOI)
		secretRoute.DELETE("/checkins/:checkinID", s.adminRemoveCheckin)
		secretRoute.POST("/tasks/award-notification", s.adminAwardNotification)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping both storages
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}
	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
