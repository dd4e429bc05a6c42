package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"talenthub/interview/internal/models"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEventPublisherDisabledWithoutRedis(t *testing.T) {
	publisher := NewEventPublisher("", zap.NewNop())
	require.Nil(t, publisher)

	// Publishing on a nil publisher is a no-op, not a panic.
	publisher.Publish(EventInterviewAssigned, &models.Interview{ID: 1}, 2)
}

func TestEventPublisherPublish(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	publisher := NewEventPublisher(mr.Addr(), zap.NewNop())
	require.NotNil(t, publisher)

	subscriber := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = subscriber.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	sub := subscriber.Subscribe(ctx, EventChannel)
	t.Cleanup(func() { _ = sub.Close() })
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	intervieweeID := uint(7)
	interview := &models.Interview{
		ID:            42,
		Status:        models.StatusAssigned,
		InterviewerID: 3,
		IntervieweeID: &intervieweeID,
	}
	publisher.Publish(EventInterviewAssigned, interview, 3)

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var event InterviewEvent
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
	require.Equal(t, EventInterviewAssigned, event.Type)
	require.Equal(t, uint(42), event.InterviewID)
	require.Equal(t, models.StatusAssigned, event.Status)
	require.Equal(t, uint(3), event.InterviewerID)
	require.NotNil(t, event.IntervieweeID)
	require.Equal(t, uint(7), *event.IntervieweeID)
	require.Equal(t, uint(3), event.ActorID)
	require.NotEmpty(t, event.OccurredAt)
}
