package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CollectionName is the MongoDB collection holding orderings.
const CollectionName = "orderings"

// MongoStore stores orderings in a MongoDB collection keyed by name.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// mongoOrdering is the BSON document layout; the name is the primary key.
type mongoOrdering struct {
	Name      string    `bson:"_id"`
	ID        string    `bson:"id"`
	Length    int       `bson:"length"`
	Code      string    `bson:"code"`
	Labels    []string  `bson:"labels,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func toDocument(o *Ordering) mongoOrdering {
	return mongoOrdering{
		Name:      o.Name,
		ID:        o.ID,
		Length:    o.Length,
		Code:      o.Code,
		Labels:    o.Labels,
		CreatedAt: o.CreatedAt.UTC(),
		UpdatedAt: o.UpdatedAt.UTC(),
	}
}

func (d mongoOrdering) ordering() *Ordering {
	return &Ordering{
		ID:        d.ID,
		Name:      d.Name,
		Length:    d.Length,
		Code:      d.Code,
		Labels:    d.Labels,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// NewMongoStore uses an existing collection. Close does not disconnect.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// DialMongo connects to uri, pings the primary and opens the orderings
// collection in database.
func DialMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, unavailable(err, "connect to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, unavailable(err, "ping mongodb")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(CollectionName),
	}, nil
}

func (s *MongoStore) Get(ctx context.Context, name string) (*Ordering, error) {
	var doc mongoOrdering
	err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, unavailable(err, "get ordering %q", name)
	}
	return doc.ordering(), nil
}

func (s *MongoStore) Put(ctx context.Context, o *Ordering) error {
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": o.Name}, toDocument(o), options.Replace().SetUpsert(true))
	if err != nil {
		return unavailable(err, "put ordering %q", o.Name)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return unavailable(err, "delete ordering %q", name)
	}
	if res.DeletedCount == 0 {
		return notFound(name)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]*Ordering, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, unavailable(err, "list orderings")
	}
	var docs []mongoOrdering
	if err := cur.All(ctx, &docs); err != nil {
		return nil, unavailable(err, "list orderings")
	}

	out := make([]*Ordering, len(docs))
	for i, d := range docs {
		out[i] = d.ordering()
	}
	return out, nil
}

// Close disconnects the client if the store created it.
func (s *MongoStore) Close() error {
	if s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
