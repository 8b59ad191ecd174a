package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/repository"
	"github.com/d60-Lab/campus-social/pkg/metrics"
)

type GroupService interface {
	CreateGroup(ctx context.Context, owner *model.User, name string) (*model.GroupView, error)
	// Invite 邀请者必须是群成员；重复邀请视为成功
	Invite(ctx context.Context, inviter *model.User, groupID, userID uint) error
	Send(ctx context.Context, sender *model.User, groupID uint, content string) (*model.MessageView, error)
	History(ctx context.Context, user *model.User, groupID uint, limit int) ([]model.MessageView, error)
	ListGroups(ctx context.Context, user *model.User) ([]model.GroupView, error)
}

type groupService struct {
	groups repository.GroupRepository
	users  repository.UserRepository
	now    func() time.Time
}

func NewGroupService(groups repository.GroupRepository, users repository.UserRepository) GroupService {
	return &groupService{groups: groups, users: users, now: func() time.Time { return time.Now().UTC() }}
}

func (s *groupService) CreateGroup(ctx context.Context, owner *model.User, name string) (*model.GroupView, error) {
	if owner == nil {
		return nil, ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = model.DefaultGroupName
	}
	if utf8.RuneCountInString(name) > 64 {
		return nil, ErrFieldTooLong
	}
	g := &model.Group{Name: name, Timestamp: s.now()}
	if err := s.groups.Create(ctx, g, owner.ID); err != nil {
		return nil, err
	}
	return &model.GroupView{ID: g.ID, Name: g.Name, Members: 1, Timestamp: g.Timestamp}, nil
}

// requireMember 群不存在返回 ErrGroupNotFound，非成员返回 ErrForbidden
func (s *groupService) requireMember(ctx context.Context, groupID, userID uint) error {
	g, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrGroupNotFound
	}
	ok, err := s.groups.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

func (s *groupService) Invite(ctx context.Context, inviter *model.User, groupID, userID uint) error {
	if inviter == nil {
		return ErrUnauthorized
	}
	if err := s.requireMember(ctx, groupID, inviter.ID); err != nil {
		return err
	}
	invitee, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if invitee == nil {
		return ErrUserNotFound
	}
	return s.groups.AddMember(ctx, groupID, invitee.ID)
}

func (s *groupService) Send(ctx context.Context, sender *model.User, groupID uint, content string) (*model.MessageView, error) {
	if sender == nil {
		return nil, ErrUnauthorized
	}
	content, err := validateContent(content, model.MaxMessageLength)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, groupID, sender.ID); err != nil {
		return nil, err
	}
	m := &model.GroupMessage{GroupID: groupID, SenderID: sender.ID, Message: content, Timestamp: s.now()}
	if err := s.groups.CreateMessage(ctx, m); err != nil {
		return nil, err
	}
	metrics.MessagesSent.WithLabelValues("group").Inc()
	return &model.MessageView{
		ID:        m.ID,
		UserID:    sender.ID,
		FirstName: sender.FirstName,
		LastName:  sender.LastName,
		Content:   m.Message,
		Timestamp: m.Timestamp,
	}, nil
}

func (s *groupService) History(ctx context.Context, user *model.User, groupID uint, limit int) ([]model.MessageView, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	if err := s.requireMember(ctx, groupID, user.ID); err != nil {
		return nil, err
	}
	msgs, err := s.groups.History(ctx, groupID, normalizeLimit(limit))
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

func (s *groupService) ListGroups(ctx context.Context, user *model.User) ([]model.GroupView, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	groups, err := s.groups.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	out := make([]model.GroupView, 0, len(groups))
	for _, g := range groups {
		n, err := s.groups.CountMembers(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, model.GroupView{ID: g.ID, Name: g.Name, Members: n, Timestamp: g.Timestamp})
	}
	return out, nil
}
