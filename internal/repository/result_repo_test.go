package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestGetByIDMalformedID(t *testing.T) {
	ctx := context.Background()
	// Connect does not dial; the lookup must return before any query is sent
	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://localhost:1"))
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect(ctx) })

	repo := NewResultRepo(client.Database("capsdiag_test"))
	for _, id := range []string{"not-hex", "", "123"} {
		result, err := repo.GetByID(ctx, id)
		assert.NoError(t, err, id)
		assert.Nil(t, result, id)
	}
}
