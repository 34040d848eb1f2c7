package publisher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clearview/internal/clearing/models"
	id "clearview/pkg/domain"
)

func TestNewRequiresBrokers(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	p, err := New([]string{"127.0.0.1:1"}, WithTopic("decisions"))
	require.NoError(t, err)
	defer p.client.Close()
	assert.Equal(t, "decisions", p.Topic())

	q, err := New([]string{"127.0.0.1:1"}, WithTopic(""))
	require.NoError(t, err)
	defer q.client.Close()
	assert.Equal(t, DefaultTopic, q.Topic())
}

func TestPublishReturnsDeliveryFailure(t *testing.T) {
	p, err := New([]string{"127.0.0.1:1"}, WithTopic("decisions"))
	require.NoError(t, err)
	defer p.client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err = p.Publish(ctx, models.ClearingEvent{ID: id.NewEventID(), ItemID: 3, Origin: models.OriginUser})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decisions")
}
