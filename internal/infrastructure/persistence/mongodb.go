package persistence

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDocumentsCollection = "documents"

// NewMongoClient creates a new MongoDB client
func NewMongoClient(ctx context.Context, uri, username, password string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)

	if username != "" && password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: username,
			Password: password,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

type mongoDocument struct {
	Name      string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoBackend keeps one document per collection, keyed by collection name
type MongoBackend struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoBackend uses the documents collection of the named database
func NewMongoBackend(client *mongo.Client, database string) *MongoBackend {
	return &MongoBackend{
		client:     client,
		collection: client.Database(database).Collection(mongoDocumentsCollection),
	}
}

// Get finds the document for name
func (b *MongoBackend) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var doc mongoDocument
	err := b.collection.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(doc.Payload), true, nil
}

// Put replaces or inserts the document for name
func (b *MongoBackend) Put(ctx context.Context, name string, payload []byte) error {
	doc := mongoDocument{
		Name:      name,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	}
	_, err := b.collection.ReplaceOne(ctx, bson.M{"_id": name}, doc, options.Replace().SetUpsert(true))
	return err
}

// Close disconnects the client
func (b *MongoBackend) Close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}
