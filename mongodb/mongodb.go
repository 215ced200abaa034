package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoDBConn struct {
	Client       *mongo.Client
	opts         *options.ClientOptions
	databaseName string
}

func (db *MongoDBConn) Connect(ctx context.Context) error {

	client, err := mongo.Connect(ctx, db.opts)
	if err != nil {
		return err
	}

	db.Client = client

	return nil
}

// Ping checks the primary is reachable. mongo.Connect does not dial, so call this before first use.
func (db *MongoDBConn) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

func (db *MongoDBConn) Disconnect(ctx context.Context) error {

	if db.Client == nil {
		return nil
	}

	return db.Client.Disconnect(ctx)
}

func (db *MongoDBConn) GetDatabase() *mongo.Database {
	return db.Client.Database(db.databaseName)
}

func (db *MongoDBConn) GetCollection(collectionName string) *mongo.Collection {
	return db.GetDatabase().Collection(collectionName)
}

func New(uri string, databaseName string) MongoDBConn {

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	return MongoDBConn{
		opts:         opts,
		databaseName: databaseName,
	}
}

// InitConnection connects and pings.
func InitConnection(ctx context.Context, uri string, databaseName string) (*MongoDBConn, error) {

	mongodbConn := New(uri, databaseName)
	if err := mongodbConn.Connect(ctx); err != nil {
		return nil, err
	}

	if err := mongodbConn.Ping(ctx); err != nil {
		_ = mongodbConn.Disconnect(ctx)
		return nil, err
	}

	return &mongodbConn, nil
}
