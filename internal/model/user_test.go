package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailPolicy_Validate(t *testing.T) {
	p := EmailPolicy{Suffix: "@maine.edu", AdminSentinel: "admin"}

	cases := []struct {
		email string
		ok    bool
	}{
		{"student@maine.edu", true},
		{"Student@Maine.EDU", true},
		{"admin", true},
		{"student@gmail.com", false},
		{"@maine.edu", false},
		{"admin@gmail.com", false},
		{"", false},
	}
	for _, c := range cases {
		err := p.Validate(c.email)
		if c.ok {
			assert.NoError(t, err, c.email)
		} else {
			assert.ErrorIs(t, err, ErrInvalidEmailDomain, c.email)
		}
	}
}

func TestEmailPolicy_ValidateClaim(t *testing.T) {
	p := EmailPolicy{Suffix: "@maine.edu", AdminSentinel: "admin"}

	assert.NoError(t, p.ValidateClaim("student@maine.edu"))
	for _, email := range []string{"admin", "ADMIN", " Admin ", "student@gmail.com"} {
		assert.ErrorIs(t, p.ValidateClaim(email), ErrInvalidEmailDomain, email)
	}
	assert.True(t, p.Reserved("Admin"))
	assert.False(t, EmailPolicy{Suffix: "@maine.edu"}.Reserved(""))
}

func TestUserViews_Composition(t *testing.T) {
	u := &User{ID: 3, FirstName: "Ada", LastName: "L", Email: "ada@maine.edu", Bio: "bio", TagLine: "tl", ProfilePicture: []byte{1, 2, 3}}

	info := u.UserInfo()
	assert.Equal(t, uint(3), info.ID)
	assert.Equal(t, "bio", info.Bio)
	assert.Equal(t, "AQID", info.Base64Image)
	assert.Equal(t, u.PostUserInfo(), info.PostUserInfo)

	s := u.Summary()
	assert.Equal(t, "Ada", s.FirstName)
	assert.Equal(t, "AQID", s.Base64Image)

	assert.Equal(t, "", (&User{}).Base64ProfilePicture())
}

func TestReportType_Reasons(t *testing.T) {
	typ, err := ParseReportType("REPORTED_POST")
	require.NoError(t, err)
	assert.Len(t, typ.Reasons(), 5)

	r, err := ReportedComment.ReasonByID(3)
	require.NoError(t, err)
	assert.Equal(t, "False Information", r)

	_, err = ReportedUser.ReasonByID(9)
	assert.Error(t, err)

	_, err = ParseReportType("REPORTED_GROUP")
	assert.ErrorIs(t, err, ErrUnknownReportType)
}

func TestFollow_BeforeCreateRejectsSelf(t *testing.T) {
	assert.ErrorIs(t, (&Follow{FollowerID: 1, FollowingID: 1}).BeforeCreate(nil), ErrSelfFollow)
	assert.NoError(t, (&Follow{FollowerID: 1, FollowingID: 2}).BeforeCreate(nil))
}
