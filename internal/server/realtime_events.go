package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"devconnect/internal/middleware"
	"devconnect/internal/notifications"
	"devconnect/internal/observability"
)

// realtimeFeedFlag is the kill switch for realtime feed delivery. It ships
// enabled; set realtime_feed=off to fall back to plain request/response.
const realtimeFeedFlag = "realtime_feed"

// publishFeedEvent fans a feed event out to every connected client, both on
// this instance (hub) and on peers (Redis pub/sub).  Publishing is
// best-effort: a Redis outage must never fail the originating request.
func (s *Server) publishFeedEvent(eventType string, postID, actorID uint, payload map[string]interface{}) {
	if !s.flags.EnabledOrDefault(realtimeFeedFlag, actorID, true) {
		return
	}
	observability.FeedEventsPublished.WithLabelValues(eventType).Inc()

	if s.notifier == nil {
		return
	}
	event := notifications.FeedEvent{
		Type:    eventType,
		PostID:  postID,
		ActorID: actorID,
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			middleware.Logger.Warn("failed to marshal feed event payload",
				slog.String("event_type", eventType),
				slog.Any("error", err))
			return
		}
		event.Payload = raw
	}
	if err := s.notifier.PublishFeed(context.Background(), event); err != nil {
		middleware.Logger.Warn("failed to publish feed event",
			slog.String("event_type", eventType),
			slog.Any("error", err))
	}
}

// notifyPostOwner pushes a personal notification to a post's author when
// someone else interacts with it. Self-interactions stay quiet.
func (s *Server) notifyPostOwner(eventType string, ownerID, postID, actorID uint) {
	if s.notifier == nil || ownerID == actorID {
		return
	}
	if !s.flags.EnabledOrDefault(realtimeFeedFlag, ownerID, true) {
		return
	}
	payload, err := json.Marshal(notifications.FeedEvent{
		Type:      eventType,
		PostID:    postID,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		middleware.Logger.Warn("failed to marshal user notification",
			slog.String("event_type", eventType),
			slog.Any("error", err))
		return
	}
	if err := s.notifier.PublishUser(context.Background(), ownerID, string(payload)); err != nil {
		middleware.Logger.Warn("failed to publish user notification",
			slog.String("event_type", eventType),
			slog.Uint64("user_id", uint64(ownerID)),
			slog.Any("error", err))
	}
}
