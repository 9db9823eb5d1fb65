package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/visitcacapava/checkin-api/schema"
	"github.com/visitcacapava/checkin-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("checkin")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS checkin`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO checkin").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.AccountProfile{},
	).Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	if err := seedMongo(); err != nil {
		panic(err)
	}
}

// seedMongo loads the initial municipal catalog. Aliases carry a unique
// index, so re-running the migration leaves existing entries alone.
func seedMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}

	fmt.Println("initialize poi collection")
	c := client.Database(viper.GetString("mongo.database")).Collection(schema.POICollection)

	pois := make([]interface{}, 0, len(initialCatalog))
	for _, p := range initialCatalog {
		pois = append(pois, p)
	}

	_, err = c.InsertMany(ctx, pois, options.InsertMany().SetOrdered(false))
	if err != nil {
		if errs, hasErr := err.(mongo.BulkWriteException); hasErr {
			for _, writeErr := range errs.WriteErrors {
				if writeErr.Code != store.DuplicateKeyCode {
					return err
				}
			}
			return nil
		}
	}

	return err
}
