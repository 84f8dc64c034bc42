package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDocumentRoundTrip(t *testing.T) {
	o := testOrdering("deck")

	doc := toDocument(o)
	assert.Equal(t, "deck", doc.Name)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Equal(t, "deck", m["_id"], "name should be the primary key")
	assert.Equal(t, "20", m["code"])

	var back mongoOrdering
	require.NoError(t, bson.Unmarshal(raw, &back))
	got := back.ordering()
	assert.Equal(t, o.Name, got.Name)
	assert.Equal(t, o.Code, got.Code)
	assert.Equal(t, o.Labels, got.Labels)
	assert.True(t, o.CreatedAt.Equal(got.CreatedAt))
}

// TestMongoStore runs against a real server when LEHMER_TEST_MONGO_URI is set.
func TestMongoStore(t *testing.T) {
	uri := os.Getenv("LEHMER_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("LEHMER_TEST_MONGO_URI not set")
	}

	runStoreSuite(t, func(t *testing.T) Store {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db := fmt.Sprintf("lehmer_test_%d", time.Now().UnixNano())
		s, err := DialMongo(ctx, uri, db)
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = s.client.Database(db).Drop(context.Background())
			_ = s.Close()
		})
		return s
	})
}
