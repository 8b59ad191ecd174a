package service

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/repository"
)

const MaxProfilePictureBytes = 2 << 20

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// ProfileUpdate nil 字段保持不变
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	TagLine   *string
	Bio       *string
	Email     *string
}

type UserService interface {
	Profile(ctx context.Context, viewer *model.User, userID uint) (*model.UserInfoView, error)
	UpdateProfile(ctx context.Context, user *model.User, upd ProfileUpdate) (*model.UserInfo, error)
	UploadProfilePicture(ctx context.Context, user *model.User, encoded string) error
	ProfilePicture(ctx context.Context, user *model.User) (string, error)
	Search(ctx context.Context, query string, page, pageSize int) (*model.Page[model.UserSummary], error)
}

type userService struct {
	users   repository.UserRepository
	follows repository.FollowRepository
}

func NewUserService(users repository.UserRepository, follows repository.FollowRepository) UserService {
	return &userService{users: users, follows: follows}
}

func (s *userService) Profile(ctx context.Context, viewer *model.User, userID uint) (*model.UserInfoView, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	view := &model.UserInfoView{User: u.UserInfo()}
	if viewer != nil {
		view.IsOwnProfile = viewer.ID == u.ID
		if !view.IsOwnProfile {
			if view.IsFollowing, err = s.follows.Exists(ctx, viewer.ID, u.ID); err != nil {
				return nil, err
			}
		}
	}
	return view, nil
}

func setField(dst *string, v *string, max int) error {
	if v == nil {
		return nil
	}
	val := strings.TrimSpace(*v)
	if utf8.RuneCountInString(val) > max {
		return ErrFieldTooLong
	}
	*dst = val
	return nil
}

func (s *userService) UpdateProfile(ctx context.Context, user *model.User, upd ProfileUpdate) (*model.UserInfo, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	u := *user
	for _, f := range []struct {
		dst *string
		v   *string
		max int
	}{
		{&u.FirstName, upd.FirstName, 32},
		{&u.LastName, upd.LastName, 32},
		{&u.TagLine, upd.TagLine, 50},
		{&u.Bio, upd.Bio, 200},
	} {
		if err := setField(f.dst, f.v, f.max); err != nil {
			return nil, err
		}
	}
	if u.FirstName == "" || u.LastName == "" {
		return nil, ErrMissingName
	}

	if upd.Email != nil {
		email := normalizeEmail(*upd.Email)
		if email != u.Email {
			if err := model.CurrentEmailPolicy().ValidateClaim(email); err != nil {
				return nil, err
			}
			taken, err := s.users.FindByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if taken != nil {
				return nil, ErrEmailTaken
			}
			u.Email = email
		}
	}

	if err := s.users.Save(ctx, &u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	*user = u
	info := u.UserInfo()
	return &info, nil
}

// decodeImage 支持 data URL 前缀
func decodeImage(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if strings.HasPrefix(encoded, "data:") {
		_, rest, ok := strings.Cut(encoded, ",")
		if !ok {
			return nil, ErrInvalidImage
		}
		encoded = rest
	}
	if encoded == "" {
		return nil, ErrInvalidImage
	}
	if base64.StdEncoding.DecodedLen(len(encoded)) > MaxProfilePictureBytes+3 {
		return nil, ErrInvalidImage
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(encoded); err != nil {
			return nil, ErrInvalidImage
		}
	}
	if len(data) == 0 || len(data) > MaxProfilePictureBytes {
		return nil, ErrInvalidImage
	}
	if !allowedImageTypes[http.DetectContentType(data)] {
		return nil, ErrInvalidImage
	}
	return data, nil
}

func (s *userService) UploadProfilePicture(ctx context.Context, user *model.User, encoded string) error {
	if user == nil {
		return ErrUnauthorized
	}
	data, err := decodeImage(encoded)
	if err != nil {
		return err
	}
	u := *user
	u.ProfilePicture = data
	if err := s.users.Save(ctx, &u); err != nil {
		return err
	}
	*user = u
	return nil
}

func (s *userService) ProfilePicture(ctx context.Context, user *model.User) (string, error) {
	if user == nil {
		return "", ErrUnauthorized
	}
	return user.Base64ProfilePicture(), nil
}

// normalizeQuery 去掉空格和句点并转小写
func normalizeQuery(q string) string {
	q = strings.ToLower(q)
	return strings.NewReplacer(" ", "", ".", "", "\t", "").Replace(q)
}

func (s *userService) Search(ctx context.Context, query string, page, pageSize int) (*model.Page[model.UserSummary], error) {
	page, pageSize = normalizePage(page, pageSize)
	out := &model.Page[model.UserSummary]{Items: []model.UserSummary{}, Page: page, PageSize: pageSize}
	q := normalizeQuery(query)
	if q == "" {
		return out, nil
	}
	users, total, err := s.users.Search(ctx, q, offsetOf(page, pageSize), pageSize)
	if err != nil {
		return nil, err
	}
	out.Total = total
	for _, u := range users {
		out.Items = append(out.Items, u.Summary())
	}
	return out, nil
}
