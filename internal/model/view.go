package model

import "time"

// PostUserInfo 动态中展示的作者信息
type PostUserInfo struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	TagLine     string `json:"tag_line"`
	Base64Image string `json:"base64_image"`
}

// UserInfo 个人主页信息
type UserInfo struct {
	PostUserInfo
	Bio string `json:"bio"`
}

type UserInfoView struct {
	User         UserInfo `json:"user"`
	IsFollowing  bool     `json:"is_following"`
	IsOwnProfile bool     `json:"is_own_profile"`
}

// UserSummary 列表中的轻量用户信息
type UserSummary struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Base64Image string `json:"base64_image"`
}

// DeletedUserSummary 关注列表中引用的用户已被删除时的占位
func DeletedUserSummary(id uint) UserSummary {
	return UserSummary{ID: id, FirstName: "Deleted", LastName: "User"}
}

type CommentView struct {
	CommentID          uint      `json:"comment_id"`
	Content            string    `json:"content"`
	CommenterID        uint      `json:"commenter_id"`
	CommenterFirstName string    `json:"commenter_first_name"`
	CommenterLastName  string    `json:"commenter_last_name"`
	ProfilePicture     string    `json:"profile_picture_base64"`
	Timestamp          time.Time `json:"timestamp"`
}

type PostView struct {
	ID        uint          `json:"id"`
	Content   string        `json:"content"`
	User      PostUserInfo  `json:"post_user_info"`
	Comments  []CommentView `json:"comments"`
	Timestamp time.Time     `json:"timestamp"`
	LikeCount int64         `json:"like_count"`
	IsLiked   bool          `json:"is_liked"`
}

type Page[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

type ConversationSummary struct {
	UserID      uint      `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	TagLine     string    `json:"tag_line"`
	Base64Image string    `json:"base64_image"`
	LastMessage string    `json:"last_message"`
	Timestamp   time.Time `json:"timestamp"`
}

type MessageView struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type GroupView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Members   int64     `json:"members"`
	Timestamp time.Time `json:"timestamp"`
}

type ReportView struct {
	ReportID     uint       `json:"report_id"`
	ReportType   ReportType `json:"report_type"`
	ReportedID   uint       `json:"reported_id"`
	ReportReason string     `json:"report_reason"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Timestamp    time.Time  `json:"timestamp"`
}
