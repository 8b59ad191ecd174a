package model

import "time"

const (
	DefaultGroupName = "Untitled Group"
	MaxMessageLength = 1000
)

type DirectMessage struct {
	ID         uint      `gorm:"primaryKey"`
	SenderID   uint      `gorm:"not null;index:idx_dm_pair,priority:1"`
	Sender     User      `gorm:"foreignKey:SenderID;references:ID"`
	ReceiverID uint      `gorm:"not null;index:idx_dm_pair,priority:2;index"`
	Receiver   User      `gorm:"foreignKey:ReceiverID;references:ID"`
	Message    string    `gorm:"type:text"`
	Timestamp  time.Time `gorm:"autoCreateTime;column:timestamp;index"`
}

func (DirectMessage) TableName() string { return "usm_social_direct_messages" }

type Group struct {
	ID        uint      `gorm:"primaryKey;column:group_id"`
	Name      string    `gorm:"size:64"`
	Timestamp time.Time `gorm:"autoCreateTime;column:timestamp"`
}

func (Group) TableName() string { return "usm_social_groups" }

// GroupMember 群成员关联表
type GroupMember struct {
	GroupID uint `gorm:"primaryKey;autoIncrement:false;column:group_id"`
	UserID  uint `gorm:"primaryKey;autoIncrement:false;column:user_id;index"`
}

func (GroupMember) TableName() string { return "usm_social_groups_mapping" }

type GroupMessage struct {
	ID        uint      `gorm:"primaryKey"`
	SenderID  uint      `gorm:"not null;index"`
	Sender    User      `gorm:"foreignKey:SenderID;references:ID"`
	GroupID   uint      `gorm:"not null;index:idx_gm_group_ts,priority:1"`
	Message   string    `gorm:"type:text"`
	Timestamp time.Time `gorm:"autoCreateTime;column:timestamp;index:idx_gm_group_ts,priority:2"`
}

func (GroupMessage) TableName() string { return "usm_social_group_messages" }
