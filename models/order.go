package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type OrderStatus string

const (
	OrderStatusNew OrderStatus = "NEW"
)

type OrderContact struct {
	Nombre   string `bson:"nombre" json:"nombre"`
	Apellido string `bson:"apellido" json:"apellido"`
	Email    string `bson:"email" json:"email"`
	Telefono string `bson:"telefono" json:"telefono"`
}

type OrderShipping struct {
	Direccion    string `bson:"direccion" json:"direccion"`
	Ciudad       string `bson:"ciudad" json:"ciudad"`
	Provincia    string `bson:"provincia" json:"provincia"`
	CodigoPostal string `bson:"codigoPostal" json:"codigoPostal"`
	Notas        string `bson:"notas,omitempty" json:"notas,omitempty"`
}

type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order is a checkout submission. Card details are never part of it.
type Order struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Contact    OrderContact  `bson:"contact" json:"contact"`
	Shipping   OrderShipping `bson:"shipping" json:"shipping"`
	Notes      string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Items      []OrderItem   `bson:"items" json:"items"`
	TotalItems int           `bson:"totalItems" json:"totalItems"`
	TotalPrice float64       `bson:"totalPrice" json:"totalPrice"`
	Status     OrderStatus   `bson:"status" json:"status"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}
