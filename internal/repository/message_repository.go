package repository

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/d60-Lab/campus-social/internal/model"
)

type MessageRepository interface {
	Create(ctx context.Context, m *model.DirectMessage) error
	// LatestPerCounterpart 每个会话对象只取最新一条，按时间倒序
	LatestPerCounterpart(ctx context.Context, userID uint) ([]*model.DirectMessage, error)
	// History 两人之间最近 limit 条，按时间正序
	History(ctx context.Context, userID, counterpartID uint, limit int) ([]*model.DirectMessage, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository { return &messageRepository{db: db} }

func (r *messageRepository) Create(ctx context.Context, m *model.DirectMessage) error {
	return r.db.WithContext(ctx).Omit("Sender", "Receiver").Create(m).Error
}

func (r *messageRepository) LatestPerCounterpart(ctx context.Context, userID uint) ([]*model.DirectMessage, error) {
	var lastIDs []uint
	err := r.db.WithContext(ctx).Raw(`SELECT MAX(id) FROM usm_social_direct_messages
		WHERE sender_id = ? OR receiver_id = ?
		GROUP BY CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END`,
		userID, userID, userID).Scan(&lastIDs).Error
	if err != nil {
		return nil, err
	}
	if len(lastIDs) == 0 {
		return []*model.DirectMessage{}, nil
	}

	var msgs []*model.DirectMessage
	if err := r.db.WithContext(ctx).
		Preload("Sender").Preload("Receiver").
		Where("id IN ?", lastIDs).
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	sort.Slice(msgs, func(i, j int) bool {
		if msgs[i].Timestamp.Equal(msgs[j].Timestamp) {
			return msgs[i].ID > msgs[j].ID
		}
		return msgs[i].Timestamp.After(msgs[j].Timestamp)
	})
	return msgs, nil
}

func (r *messageRepository) History(ctx context.Context, userID, counterpartID uint, limit int) ([]*model.DirectMessage, error) {
	var msgs []*model.DirectMessage
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, counterpartID, counterpartID, userID).
		Order("timestamp DESC").Order("id DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	reverse(msgs)
	return msgs, nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
