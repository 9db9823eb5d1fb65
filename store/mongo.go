package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/visitcacapava/checkin-api/external/geoinfo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second

	// DuplicateKeyCode - mongo server error code of a unique index violation
	DuplicateKeyCode = 11000
)

// LedgerLimits - anti-fraud constraints enforced by the redemption gate.
type LedgerLimits struct {
	// Cooldown before the same account can redeem the same POI again
	Cooldown time.Duration
	// DailyCap on redemptions per account per local day, across all POIs
	DailyCap int
}

// DefaultLedgerLimits returns the standard municipal limits.
func DefaultLedgerLimits() LedgerLimits {
	return LedgerLimits{
		Cooldown: 30 * time.Minute,
		DailyCap: 20,
	}
}

// MongoStore - interface for mongodb operations
type MongoStore interface {
	POI
	CheckinLedger
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client    *mongo.Client
	database  string
	geoClient geoinfo.GeoInfo
	limits    LedgerLimits
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string, geoClient geoinfo.GeoInfo, limits LedgerLimits) MongoStore {
	return &mongoDB{
		client:    client,
		database:  database,
		geoClient: geoClient,
		limits:    limits,
	}
}
