package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ticketing-webapp/model"
)

func GetUserByEmail(email string) (model.User, bool, error) {
	var user model.User
	found := false

	cur, err := UsersCollection.Find(ctx, bson.D{primitive.E{Key: "email", Value: email}})
	if err != nil {
		return model.User{}, false, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		if err := cur.Decode(&user); err != nil {
			return model.User{}, false, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
		}
		found = true
	}
	if err := cur.Err(); err != nil {
		return model.User{}, false, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}

	return user, found, nil
}

func GetUsersByRole(role string) ([]model.User, error) {
	users := []model.User{}

	cur, err := UsersCollection.Find(ctx, bson.D{primitive.E{Key: "role", Value: role}})
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading users from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var user model.User
		if err := cur.Decode(&user); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading users from database: %v", err)
		}
		users = append(users, user)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading users from database: %v", err)
	}

	return users, nil
}

func InsertUser(user model.User) error {
	_, err := UsersCollection.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("db error while writing user: %v", err)
	}
	return nil
}
