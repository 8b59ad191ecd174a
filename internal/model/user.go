package model

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Role 角色按权限递增排列，鉴权时按集合匹配而不是比较大小
type Role string

const (
	RoleGuest   Role = "GUEST"
	RoleStudent Role = "STUDENT"
	RoleAlumni  Role = "ALUMNI"
	RoleStaff   Role = "STAFF"
	RoleFaculty Role = "FACULTY"
	RoleAdmin   Role = "ADMIN"
)

var ErrInvalidEmailDomain = errors.New("email must belong to the institutional domain")

// User 账号
type User struct {
	ID                uint      `gorm:"primaryKey;column:user_id" json:"id"`
	FirstName         string    `gorm:"size:32" json:"first_name"`
	LastName          string    `gorm:"size:32" json:"last_name"`
	Email             string    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Password          *string   `gorm:"size:64" json:"-"` // OAuth 账号为空
	TagLine           string    `gorm:"size:50" json:"tag_line"`
	Bio               string    `gorm:"size:200" json:"bio"`
	Role              Role      `gorm:"type:varchar(16);not null" json:"role"`
	ProfilePicture    []byte    `json:"-"`
	VerificationToken *string   `gorm:"size:36;index" json:"-"`
	Verified          bool      `json:"verified"`
	Timestamp         time.Time `gorm:"autoCreateTime;column:timestamp" json:"timestamp"`
}

func (User) TableName() string { return "usm_social_users" }

// BeforeSave 创建和更新时都校验邮箱域名
func (u *User) BeforeSave(tx *gorm.DB) error {
	return CurrentEmailPolicy().Validate(u.Email)
}

func (u *User) Base64ProfilePicture() string {
	if len(u.ProfilePicture) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(u.ProfilePicture)
}

func (u *User) HasPassword() bool { return u.Password != nil && *u.Password != "" }

func (u *User) PostUserInfo() PostUserInfo {
	return PostUserInfo{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		TagLine:     u.TagLine,
		Base64Image: u.Base64ProfilePicture(),
	}
}

func (u *User) UserInfo() UserInfo {
	return UserInfo{PostUserInfo: u.PostUserInfo(), Bio: u.Bio}
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Base64Image: u.Base64ProfilePicture(),
	}
}

// EmailPolicy 机构邮箱后缀；AdminSentinel 为保留的管理员账号
type EmailPolicy struct {
	Suffix        string
	AdminSentinel string
}

func (p EmailPolicy) Validate(email string) error {
	if email == p.AdminSentinel {
		return nil
	}
	if !strings.HasSuffix(strings.ToLower(email), strings.ToLower(p.Suffix)) || len(email) <= len(p.Suffix) {
		return fmt.Errorf("%w: %s", ErrInvalidEmailDomain, p.Suffix)
	}
	return nil
}

// Reserved 管理员账号只能由启动流程写入，注册和改邮箱都不可使用
func (p EmailPolicy) Reserved(email string) bool {
	return p.AdminSentinel != "" && strings.EqualFold(strings.TrimSpace(email), p.AdminSentinel)
}

// ValidateClaim 用户自行申请的邮箱：必须是机构邮箱且不是保留账号
func (p EmailPolicy) ValidateClaim(email string) error {
	if p.Reserved(email) {
		return fmt.Errorf("%w: %s", ErrInvalidEmailDomain, p.Suffix)
	}
	return p.Validate(email)
}

var (
	policyMu sync.RWMutex
	policy   = EmailPolicy{Suffix: "@maine.edu", AdminSentinel: "admin"}
)

// SetEmailPolicy 启动时由配置注入
func SetEmailPolicy(p EmailPolicy) {
	policyMu.Lock()
	policy = p
	policyMu.Unlock()
}

func CurrentEmailPolicy() EmailPolicy {
	policyMu.RLock()
	defer policyMu.RUnlock()
	return policy
}
