package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityreport-be/store"
)

func TestNewComplaintEvent(t *testing.T) {
	c := store.Seed().Complaints[1]
	ev := NewComplaintEvent(c, "user-7")

	raw, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "CTC-2024-002", decoded["referenceNumber"])
	assert.Equal(t, "road", decoded["category"])
	assert.Equal(t, "user-7", decoded["reporterId"])
	assert.Equal(t, c.CreatedAt.Format(time.RFC3339), decoded["createdAt"])
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), RoutingComplaintCreated, struct{}{}))
	assert.NoError(t, p.Close())
}
