package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/campus-social/internal/model"
)

type GroupRepository interface {
	// Create 建群并把创建者加入成员
	Create(ctx context.Context, g *model.Group, ownerID uint) error
	FindByID(ctx context.Context, id uint) (*model.Group, error)
	AddMember(ctx context.Context, groupID, userID uint) error
	IsMember(ctx context.Context, groupID, userID uint) (bool, error)
	CountMembers(ctx context.Context, groupID uint) (int64, error)
	ListByUser(ctx context.Context, userID uint) ([]*model.Group, error)
	CreateMessage(ctx context.Context, m *model.GroupMessage) error
	History(ctx context.Context, groupID uint, limit int) ([]*model.GroupMessage, error)
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository { return &groupRepository{db: db} }

func (r *groupRepository) Create(ctx context.Context, g *model.Group, ownerID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(g).Error; err != nil {
			return err
		}
		return tx.Create(&model.GroupMember{GroupID: g.ID, UserID: ownerID}).Error
	})
}

func (r *groupRepository) FindByID(ctx context.Context, id uint) (*model.Group, error) {
	return takeOne[model.Group](r.db.WithContext(ctx).Where("group_id = ?", id))
}

// AddMember 已是成员时不做任何事
func (r *groupRepository) AddMember(ctx context.Context, groupID, userID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.GroupMember{GroupID: groupID, UserID: userID}).Error
}

func (r *groupRepository) IsMember(ctx context.Context, groupID, userID uint) (bool, error) {
	return exists(r.db.WithContext(ctx).Model(&model.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID))
}

func (r *groupRepository) CountMembers(ctx context.Context, groupID uint) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.GroupMember{}).Where("group_id = ?", groupID).Count(&cnt).Error
	return cnt, err
}

func (r *groupRepository) ListByUser(ctx context.Context, userID uint) ([]*model.Group, error) {
	var groups []*model.Group
	err := r.db.WithContext(ctx).
		Joins("JOIN usm_social_groups_mapping m ON m.group_id = usm_social_groups.group_id").
		Where("m.user_id = ?", userID).
		Order("usm_social_groups.timestamp DESC").
		Find(&groups).Error
	return groups, err
}

func (r *groupRepository) CreateMessage(ctx context.Context, m *model.GroupMessage) error {
	return r.db.WithContext(ctx).Omit("Sender").Create(m).Error
}

func (r *groupRepository) History(ctx context.Context, groupID uint, limit int) ([]*model.GroupMessage, error) {
	var msgs []*model.GroupMessage
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("group_id = ?", groupID).
		Order("timestamp DESC").Order("id DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	reverse(msgs)
	return msgs, nil
}
