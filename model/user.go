package model

const (
	RoleCustomer  = "customer"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

type User struct {
	Id             int64  `json:"id" bson:"_id"`
	Name           string `json:"name" bson:"name"`
	Email          string `json:"email" bson:"email"`
	Role           string `json:"role" bson:"role"`
	HashedPassword string `json:"-" bson:"password_hash,omitempty"`
}
