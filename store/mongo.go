package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"comment-service/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionsCollection = "sessions"

// Mongo keeps sessions in a collection with a TTL index on expiresAt, so the server
// removes them once the session is over. A session is one document, so MongoDB's
// 16 MB document limit caps the comments a single session can hold.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
	ttl        time.Duration
}

func NewMongo(ctx context.Context, uri, database string, ttl time.Duration) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB ping error: %w", err)
	}

	m := &Mongo{
		client:     client,
		collection: client.Database(database).Collection(sessionsCollection),
		ttl:        ttl,
	}
	m.ensureIndexes(ctx)

	log.Printf("[INFO] Connected to MongoDB session store (db=%s)", database)
	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	if _, err := m.collection.Indexes().CreateOne(ctx, index); err != nil {
		log.Printf("[WARN] Failed to create TTL index: %v", err)
	}
}

func (m *Mongo) Save(ctx context.Context, s model.Session) error {
	s.ExpiresAt = expiresAt(s, m.ttl)
	if !time.Now().Before(s.ExpiresAt) {
		observe("save", "mongo", ErrExpired)
		return ErrExpired
	}

	_, err := m.collection.ReplaceOne(ctx,
		bson.M{"_id": s.ID},
		s,
		options.Replace().SetUpsert(true),
	)
	observe("save", "mongo", err)
	return err
}

func (m *Mongo) Get(ctx context.Context, id string) (model.Session, error) {
	var s model.Session
	// The TTL monitor runs about once a minute; filter on expiry as well.
	filter := bson.M{"_id": id, "expiresAt": bson.M{"$gt": time.Now()}}
	err := m.collection.FindOne(ctx, filter).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = ErrNotFound
	}
	observe("get", "mongo", err)
	if err != nil {
		return model.Session{}, err
	}
	return s, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
