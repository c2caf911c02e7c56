package snapshot

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig configures a MongoDB snapshot store.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string

	// Database name. Defaults to "pagezone".
	Database string

	// Collection name. Defaults to "snapshots".
	Collection string
}

// MongoStore is a MongoDB-backed snapshot store for shared deployments.
// Snapshots live as one document per name, keyed by the "name" field.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := cfg.Database
	if db == "" {
		db = "pagezone"
	}
	coll := cfg.Collection
	if coll == "" {
		coll = "snapshots"
	}
	return &MongoStore{client: client, coll: client.Database(db).Collection(coll)}, nil
}

func (s *MongoStore) Save(ctx context.Context, snap *Snapshot) (err error) {
	defer func() { observeSave(ctx, "mongo", snap, err) }()
	if err = ValidateName(snap.Name); err != nil {
		return err
	}

	_, err = s.coll.ReplaceOne(ctx,
		bson.M{"name": snap.Name},
		snap,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

func (s *MongoStore) Load(ctx context.Context, name string) (snap *Snapshot, err error) {
	defer func() { observeLoad(ctx, "mongo", name, err) }()
	if err = ValidateName(name); err != nil {
		return nil, err
	}

	var loaded Snapshot
	err = s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&loaded)
	if err == mongo.ErrNoDocuments {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	return &loaded, nil
}

func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	values, err := s.coll.Distinct(ctx, "name", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	names := make([]string, 0, len(values))
	for _, v := range values {
		if name, ok := v.(string); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if _, err := s.coll.DeleteOne(ctx, bson.M{"name": name}); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)
