package model

import "time"

const (
	MaxPostLength    = 280
	MaxCommentLength = 280
)

// Post 用户动态；点赞数不落库，读取时 count
type Post struct {
	ID        uint      `gorm:"primaryKey;column:post_id"`
	UserID    uint      `gorm:"not null;index:idx_post_user_ts,priority:1"`
	User      User      `gorm:"foreignKey:UserID;references:ID"`
	Content   string    `gorm:"size:280;not null"`
	Timestamp time.Time `gorm:"autoCreateTime;column:timestamp;index;index:idx_post_user_ts,priority:2"`
	Comments  []Comment `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string { return "usm_social_posts" }

type Comment struct {
	ID        uint      `gorm:"primaryKey;column:comment_id"`
	PostID    uint      `gorm:"not null;index"`
	UserID    uint      `gorm:"not null;index"`
	User      User      `gorm:"foreignKey:UserID;references:ID"`
	Content   string    `gorm:"size:280;not null"`
	Timestamp time.Time `gorm:"autoCreateTime;column:timestamp"`
}

func (Comment) TableName() string { return "usm_social_post_comments" }

// Like 复合唯一键 (user_id, post_id)，重复点赞由数据库拒绝
type Like struct {
	ID        uint      `gorm:"primaryKey;column:like_id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:ux_like_user_post,priority:2"`
	UserID    uint      `gorm:"not null;uniqueIndex:ux_like_user_post,priority:1"`
	Timestamp time.Time `gorm:"autoCreateTime;column:timestamp"`
}

func (Like) TableName() string { return "usm_social_post_likes" }
