package service

import (
	"errors"

	"github.com/d60-Lab/campus-social/internal/model"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrNotFound        = errors.New("not found")
	ErrUserNotFound    = notFound("user not found")
	ErrPostNotFound    = notFound("post not found")
	ErrCommentNotFound = notFound("comment not found")
	ErrGroupNotFound   = notFound("group not found")

	ErrConflict         = errors.New("conflict")
	ErrAlreadyLiked     = conflict("user has already liked this post")
	ErrAlreadyFollowing = conflict("already following this user")
	ErrEmailTaken       = conflict("email is already registered")

	ErrNotLiked            = errors.New("user has not liked this post")
	ErrInvalidRelationship = errors.New("follower and following users cannot be the same")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired verification token")
	ErrAdminEmailOccupied  = errors.New("admin email is held by a non-admin account")

	ErrValidation           = errors.New("validation failed")
	ErrInvalidEmailDomain   = model.ErrInvalidEmailDomain
	ErrContentTooLong       = validation("content is too long")
	ErrEmptyContent         = validation("content must not be empty")
	ErrInvalidImage         = validation("invalid image")
	ErrWeakPassword         = validation("password must be between 8 and 72 characters")
	ErrFieldTooLong         = validation("profile field is too long")
	ErrMissingName          = validation("first and last name are required")
	ErrInvalidReportReason  = validation("invalid report reason")
	ErrReportTargetNotFound = validation("reported target does not exist")
)

// kindError 让具体错误同时匹配其类别，例如 errors.Is(ErrPostNotFound, ErrNotFound)
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string        { return e.msg }
func (e *kindError) Is(target error) bool { return target == e.kind }

func notFound(msg string) error   { return &kindError{msg: msg, kind: ErrNotFound} }
func conflict(msg string) error   { return &kindError{msg: msg, kind: ErrConflict} }
func validation(msg string) error { return &kindError{msg: msg, kind: ErrValidation} }

// IsValidation 包含邮箱域名校验失败
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, model.ErrInvalidEmailDomain)
}
