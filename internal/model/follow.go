package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrSelfFollow = errors.New("follower and following users cannot be the same")

// Follow 关注关系（A 关注 B），复合主键即唯一约束
type Follow struct {
	FollowerID  uint      `gorm:"primaryKey;autoIncrement:false;column:follower_id"`
	FollowingID uint      `gorm:"primaryKey;autoIncrement:false;column:following_id;index:idx_follow_following"`
	Timestamp   time.Time `gorm:"autoCreateTime;column:timestamp"`
}

func (Follow) TableName() string { return "usm_social_followers" }

func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.FollowerID == f.FollowingID {
		return ErrSelfFollow
	}
	return nil
}
