package service

import (
	"context"
	"time"

	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/repository"
	"github.com/d60-Lab/campus-social/pkg/metrics"
)

type MessageService interface {
	SendDirect(ctx context.Context, sender *model.User, receiverID uint, content string) (*model.MessageView, error)
	RecentConversations(ctx context.Context, user *model.User) ([]model.ConversationSummary, error)
	History(ctx context.Context, user *model.User, counterpartID uint, limit int) ([]model.MessageView, error)
}

type messageService struct {
	messages repository.MessageRepository
	users    repository.UserRepository
	now      func() time.Time
}

func NewMessageService(messages repository.MessageRepository, users repository.UserRepository) MessageService {
	return &messageService{messages: messages, users: users, now: func() time.Time { return time.Now().UTC() }}
}

func (s *messageService) SendDirect(ctx context.Context, sender *model.User, receiverID uint, content string) (*model.MessageView, error) {
	if sender == nil {
		return nil, ErrUnauthorized
	}
	content, err := validateContent(content, model.MaxMessageLength)
	if err != nil {
		return nil, err
	}
	receiver, err := s.users.FindByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrUserNotFound
	}
	m := &model.DirectMessage{SenderID: sender.ID, ReceiverID: receiver.ID, Message: content, Timestamp: s.now()}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	metrics.MessagesSent.WithLabelValues("direct").Inc()
	return &model.MessageView{
		ID:        m.ID,
		UserID:    sender.ID,
		FirstName: sender.FirstName,
		LastName:  sender.LastName,
		Content:   m.Message,
		Timestamp: m.Timestamp,
	}, nil
}

func (s *messageService) RecentConversations(ctx context.Context, user *model.User) ([]model.ConversationSummary, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	latest, err := s.messages.LatestPerCounterpart(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	out := make([]model.ConversationSummary, 0, len(latest))
	for _, m := range latest {
		other := &m.Receiver
		if m.SenderID != user.ID {
			other = &m.Sender
		}
		out = append(out, model.ConversationSummary{
			UserID:      other.ID,
			FirstName:   other.FirstName,
			LastName:    other.LastName,
			TagLine:     other.TagLine,
			Base64Image: other.Base64ProfilePicture(),
			LastMessage: m.Message,
			Timestamp:   m.Timestamp,
		})
	}
	return out, nil
}

func (s *messageService) History(ctx context.Context, user *model.User, counterpartID uint, limit int) ([]model.MessageView, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	msgs, err := s.messages.History(ctx, user.ID, counterpartID, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	out := make([]model.MessageView, len(msgs))
	for i, m := range msgs {
		out[i] = model.MessageView{
			ID:        m.ID,
			UserID:    m.SenderID,
			FirstName: m.Sender.FirstName,
			LastName:  m.Sender.LastName,
			Content:   m.Message,
			Timestamp: m.Timestamp,
		}
	}
	return out, nil
}
