package main

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/visitcacapava/checkin-api/schema"
)

func seedPOI(alias, address, category string, baseReward int, lon, lat float64) schema.POI {
	return schema.POI{
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
}

// initialCatalog is the launch catalog of Caçapava do Sul.
var initialCatalog = []schema.POI{
	seedPOI("Pedra do Segredo", "Estrada da Pedra do Segredo, Caçapava do Sul - RS", schema.CategoryGeopark, 40, -53.4914, -30.5469),
	seedPOI("Guaritas do Camaquã", "BR-153, Caçapava do Sul - RS", schema.CategoryGeopark, 40, -53.5036, -30.8308),
	seedPOI("Minas do Camaquã", "Distrito de Minas do Camaquã, Caçapava do Sul - RS", schema.CategoryHistory, 35, -53.4481, -30.8681),
	seedPOI("Forte Dom Pedro II", "Rua General Osório, Caçapava do Sul - RS", schema.CategoryHistory, 0, -53.4873, -30.5136),
	seedPOI("Igreja Matriz Nossa Senhora da Assunção", "Praça Dr. Rubens da Rosa Guedes, Caçapava do Sul - RS", schema.CategoryHistory, 0, -53.4911, -30.5118),
	seedPOI("Casa de Ulhôa Cintra", "Praça Dr. Rubens da Rosa Guedes, Caçapava do Sul - RS", schema.CategoryCulture, 0, -53.4906, -30.5121),
	seedPOI("Cascata do Salso", "Estrada da Cascata, Caçapava do Sul - RS", schema.CategoryNature, 0, -53.4306, -30.6419),
}
