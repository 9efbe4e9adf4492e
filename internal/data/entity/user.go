package entity

import "time"

// User is a record in the users collection, keyed by UserID.
// UserID may equal the email when the client registers without one.
type User struct {
	UserID       string    `bson:"_id" json:"userId"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash string    `bson:"password" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
