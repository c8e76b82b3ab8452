package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product represents a catalog item in the products collection.
// JSON and BSON field names follow the stored document shape.
type Product struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category" bson:"category"`
	Price       float64            `json:"price" bson:"price"`
	Available   bool               `json:"available" bson:"available"`
	BestSeller  bool               `json:"bestSeller" bson:"bestSeller"`
	Image       string             `json:"image" bson:"image"`
	Description string             `json:"description" bson:"description"`
	Nutrition   string             `json:"nutrition" bson:"nutrition"`
}
