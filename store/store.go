package store

import (
	"github.com/jinzhu/gorm"

	"github.com/visitcacapava/checkin-api/schema"
)

// checkin main datastore
type CheckinCore interface {
	Ping() error

	// Account
	CreateAccount(string, map[string]interface{}) (*schema.Account, error)
	GetAccount(string) (*schema.Account, error)
	UpdateAccountMetadata(string, map[string]interface{}) error
	UpdateAccountGeoPosition(accountNumber string, latitude, longitude float64) error
	DeleteAccount(string) error
}

// CheckinStore is an implementation of CheckinCore
type CheckinStore struct {
	ormDB *gorm.DB
}

func NewCheckinStore(ormDB *gorm.DB) *CheckinStore {
	return &CheckinStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *CheckinStore) Ping() error {
	return s.ormDB.DB().Ping()
}
