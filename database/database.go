package database

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ticketing-webapp/config"
)

var ctx = context.TODO()

var UsersCollection *mongo.Collection
var EventsCollection *mongo.Collection
var BookingsCollection *mongo.Collection
var CountersCollection *mongo.Collection

func DBInit(collectionName string) (*mongo.Collection, error) {
	connString, err := config.GetSecret("MONGODB_CONNSTRING")
	if err != nil {
		log.Fatal("cannot find connection string for DB in the environment")
	}

	clientOptions := options.Client().ApplyURI(connString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	return client.Database(config.DB_NAME).Collection(collectionName), nil
}

// NextSequence allocates the next numeric id for the named entity from the
// counters collection. Ids are server-assigned and never reused.
func NextSequence(name string) (int64, error) {
	var counter struct {
		Value int64 `bson:"value"`
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	err := CountersCollection.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: name}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "value", Value: int64(1)}}}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("cannot allocate id for %v: %v", name, err)
	}

	return counter.Value, nil
}
