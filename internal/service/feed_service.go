package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"detailops-be/internal/dto"
	"detailops-be/internal/websocket"
)

type IFeedService interface {
	Consume(ctx context.Context) error
}

// feedService drains the activity topic and fans entries out to every
// connected dashboard through the websocket hub.
type feedService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	hub       *websocket.Hub
}

func NewFeedService(pubSub *gochannel.GoChannel, topicName string, hub *websocket.Hub) IFeedService {
	return &feedService{
		pubSub:    pubSub,
		topicName: topicName,
		hub:       hub,
	}
}

func (s *feedService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *feedService) processMessage(msg *message.Message) {
	var payload dto.ActivityResponse
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal feed message: %v", err)
		msg.Ack()
		return
	}

	s.hub.Broadcast(websocket.FeedMessage{
		Type: "activity",
		Data: &payload,
	})

	// Assignment activities also go straight to the technician's socket.
	if techId, ok := payload.Metadata["technician_id"].(float64); ok {
		s.hub.Send(int(techId), websocket.FeedMessage{
			Type: "assignment",
			Data: &payload,
		})
	}
	msg.Ack()
}
