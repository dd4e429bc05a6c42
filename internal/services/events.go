package services

import (
	"context"
	"encoding/json"
	"time"

	"talenthub/interview/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EventChannel is the Redis channel lifecycle events are published on.
const EventChannel = "interview_events"

// Lifecycle event types.
const (
	EventInterviewAssigned  = "interview_assigned"
	EventInterviewStarted   = "interview_started"
	EventInterviewCompleted = "interview_completed"
	EventInterviewEvaluated = "interview_evaluated"
	EventInterviewStatusSet = "interview_status_set"
)

// InterviewEvent is the payload published after a lifecycle transition.
type InterviewEvent struct {
	Type          string                 `json:"type"`
	InterviewID   uint                   `json:"interviewId"`
	Status        models.InterviewStatus `json:"status"`
	InterviewerID uint                   `json:"interviewerId"`
	IntervieweeID *uint                  `json:"intervieweeId"`
	ActorID       uint                   `json:"actorId"`
	OccurredAt    string                 `json:"occurredAt"`
}

// EventPublisher announces lifecycle transitions on a Redis channel so
// other services can react. Publishing is fire-and-forget: it happens
// after the transaction committed and a failure is only logged.
type EventPublisher struct {
	rdb        *redis.Client
	logger     *zap.Logger
	instanceID string
}

func NewEventPublisher(redisAddr string, logger *zap.Logger) *EventPublisher {
	if redisAddr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	return &EventPublisher{
		rdb:        rdb,
		logger:     logger,
		instanceID: uuid.New().String()[:8],
	}
}

// Publish sends the event in the background. Safe on a nil publisher.
func (p *EventPublisher) Publish(eventType string, interview *models.Interview, actorID uint) {
	if p == nil || p.rdb == nil {
		return
	}
	event := InterviewEvent{
		Type:          eventType,
		InterviewID:   interview.ID,
		Status:        interview.Status,
		InterviewerID: interview.InterviewerID,
		IntervieweeID: interview.IntervieweeID,
		ActorID:       actorID,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	go p.publish(event)
}

func (p *EventPublisher) publish(event InterviewEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal interview event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := p.rdb.Publish(ctx, EventChannel, payload).Err(); err != nil {
		p.logger.Warn("failed to publish interview event",
			zap.String("instance", p.instanceID),
			zap.String("type", event.Type),
			zap.Uint("interview_id", event.InterviewID),
			zap.Error(err))
	}
}
