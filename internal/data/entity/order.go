package entity

import "time"

type OrderStatus string

// StatusOrdered is the only status this service ever assigns.
// Status transitions belong to downstream fulfillment, not here.
const StatusOrdered OrderStatus = "ORDERED"

// Order is a record in the orders collection, keyed by OrderID.
// UserID is a reference to a user but is not checked against the
// users collection at order time.
type Order struct {
	OrderID      string      `bson:"_id" json:"orderId"`
	UserID       string      `bson:"userId" json:"userId"`
	ProductNames []string    `bson:"productNames" json:"productNames"`
	TotalAmount  float64     `bson:"totalAmount" json:"totalAmount"`
	OrderDate    time.Time   `bson:"orderDate" json:"orderDate"`
	Status       OrderStatus `bson:"status" json:"status"`
}
