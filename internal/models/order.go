package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a single line of an order. Product is stored as raw text,
// not as a reference.
type OrderItem struct {
	Product string  `json:"product" bson:"product"`
	Qty     int     `json:"qty" bson:"qty"`
	Price   float64 `json:"price" bson:"price"`
}

// Order is created verbatim from the request body. User is an opaque
// reference to an externally managed user and may be absent.
type Order struct {
	ID              primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	User            *primitive.ObjectID `json:"user,omitempty" bson:"user,omitempty"`
	OrderItems      []OrderItem         `json:"orderItems" bson:"orderItems"`
	TotalPrice      float64             `json:"totalPrice" bson:"totalPrice"`
	ShippingAddress string              `json:"shippingAddress" bson:"shippingAddress"`
	IsPaid          bool                `json:"isPaid" bson:"isPaid"`
	CreatedAt       time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt" bson:"updatedAt"`
}
