package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/campus-social/internal/model"
)

func register(t *testing.T, f *fixture, email string) (string, *model.User) {
	t.Helper()
	token, u, err := f.auth.Register(context.Background(), RegisterInput{
		FirstName: "Sam", LastName: "Student", Email: email, Password: "password123",
	})
	require.NoError(t, err)
	return token, u
}

func TestRegister_TokenSubjectIsEmail(t *testing.T) {
	f := newFixture(t, nil)
	token, u := register(t, f, "student@maine.edu")

	sub, err := f.tokens.Subject(token)
	require.NoError(t, err)
	assert.Equal(t, "student@maine.edu", sub)
	assert.Equal(t, model.RoleGuest, u.Role)
	assert.False(t, u.Verified)
	require.NotNil(t, u.VerificationToken)

	msg := f.notifier.last()
	assert.Equal(t, "student@maine.edu", msg.To)
	assert.Equal(t, "http://localhost:8080/api/v1/verify/"+*u.VerificationToken, msg.Link)
}

func TestRegister_RejectsForeignDomain(t *testing.T) {
	f := newFixture(t, nil)
	_, _, err := f.auth.Register(context.Background(), RegisterInput{
		FirstName: "Sam", LastName: "Student", Email: "student@gmail.com", Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidEmailDomain)
	assert.True(t, IsValidation(err))
}

func TestRegister_NameLengthCountsCharacters(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, u, err := f.auth.Register(ctx, RegisterInput{
		FirstName: strings.Repeat("é", 32), LastName: "张三", Email: "accent@maine.edu", Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 32), u.FirstName)

	_, _, err = f.auth.Register(ctx, RegisterInput{
		FirstName: strings.Repeat("é", 33), LastName: "Long", Email: "long@maine.edu", Password: "password123",
	})
	assert.ErrorIs(t, err, ErrFieldTooLong)
}

func TestRegister_RejectsAdminEmail(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	for _, email := range []string{"admin", "ADMIN", " admin "} {
		_, _, err := f.auth.Register(ctx, RegisterInput{
			FirstName: "Mal", LastName: "Lory", Email: email, Password: "password123",
		})
		assert.ErrorIs(t, err, ErrInvalidEmailDomain, email)
	}
	_, _, err := f.auth.RegisterOAuth(ctx, "admin", "Mal", "Lory")
	assert.ErrorIs(t, err, ErrInvalidEmailDomain)

	taken, err := f.users.FindByEmail(ctx, "admin")
	require.NoError(t, err)
	assert.Nil(t, taken)

	require.NoError(t, f.auth.EnsureAdmin(ctx))
	admin, err := f.users.FindByEmail(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, model.RoleAdmin, admin.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t, nil)
	register(t, f, "dup@maine.edu")
	_, _, err := f.auth.Register(context.Background(), RegisterInput{
		FirstName: "Other", LastName: "Person", Email: "DUP@maine.edu", Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	register(t, f, "login@maine.edu")

	token, err := f.auth.Authenticate(ctx, "login@maine.edu", "password123")
	require.NoError(t, err)
	assert.True(t, f.tokens.Validate(token, "login@maine.edu"))

	_, err = f.auth.Authenticate(ctx, "login@maine.edu", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.auth.Authenticate(ctx, "nobody@maine.edu", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	u, err := f.auth.ResolveToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "login@maine.edu", u.Email)
}

func TestResolveToken_DeletedUser(t *testing.T) {
	f := newFixture(t, nil)
	token, u := register(t, f, "gone@maine.edu")
	require.NoError(t, f.users.DeleteCascade(context.Background(), u.ID))

	_, err := f.auth.ResolveToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_PromotesGuest(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	_, u := register(t, f, "verify@maine.edu")

	require.NoError(t, f.auth.Verify(ctx, *u.VerificationToken))
	got, err := f.users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.Verified)
	assert.Nil(t, got.VerificationToken)
	assert.Equal(t, model.RoleStudent, got.Role)

	assert.ErrorIs(t, f.auth.Verify(ctx, *u.VerificationToken), ErrInvalidToken)
}

func TestVerify_KeepsNonGuestRole(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	_, u := register(t, f, "staff@maine.edu")
	u.Role = model.RoleStaff
	require.NoError(t, f.users.Save(ctx, u))

	require.NoError(t, f.auth.Verify(ctx, *u.VerificationToken))
	got, err := f.users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleStaff, got.Role)
}

func TestResetAndChangePassword(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	_, u := register(t, f, "reset@maine.edu")
	require.NoError(t, f.auth.Verify(ctx, *u.VerificationToken))

	require.NoError(t, f.auth.ResetPassword(ctx, "reset@maine.edu"))
	require.NoError(t, f.auth.ResetPassword(ctx, "unknown@maine.edu"))

	msg := f.notifier.last()
	require.True(t, strings.HasPrefix(msg.Link, "https://social.example.edu/#/passwordchange/reset/"), msg.Link)
	token := strings.TrimPrefix(msg.Link, "https://social.example.edu/#/passwordchange/reset/")

	register(t, f, "other@maine.edu")
	assert.ErrorIs(t, f.auth.ChangePassword(ctx, token, "other@maine.edu", "newpassword1"), ErrInvalidToken)

	require.NoError(t, f.auth.ChangePassword(ctx, token, "reset@maine.edu", "newpassword1"))
	_, err := f.auth.Authenticate(ctx, "reset@maine.edu", "newpassword1")
	require.NoError(t, err)
	_, err = f.auth.Authenticate(ctx, "reset@maine.edu", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	got, err := f.users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got.VerificationToken)
}

func TestAuthenticate_ClearsUnusedResetToken(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	_, u := register(t, f, "forgetful@maine.edu")
	require.NoError(t, f.auth.Verify(ctx, *u.VerificationToken))
	require.NoError(t, f.auth.ResetPassword(ctx, "forgetful@maine.edu"))

	_, err := f.auth.Authenticate(ctx, "forgetful@maine.edu", "password123")
	require.NoError(t, err)
	got, err := f.users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got.VerificationToken)
}

func TestRegisterOAuth(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	token, u, err := f.auth.RegisterOAuth(ctx, "oauth@maine.edu", "O", "Auth")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, u.HasPassword())
	assert.Equal(t, model.RoleGuest, u.Role)

	_, again, err := f.auth.RegisterOAuth(ctx, "oauth@maine.edu", "New", "Name")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
	assert.Equal(t, "New", again.FirstName)

	_, err = f.auth.Authenticate(ctx, "oauth@maine.edu", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.auth.EnsureAdmin(ctx))
	require.NoError(t, f.auth.EnsureAdmin(ctx))

	admin, err := f.users.FindByEmail(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	_, err = f.auth.Authenticate(ctx, "admin", "admin-password")
	require.NoError(t, err)
}

func TestEnsureAdmin_FailsWhenEmailHeldByNonAdmin(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.users.Create(ctx, &model.User{
		FirstName: "Not", LastName: "Admin", Email: "admin", Role: model.RoleGuest,
	}))

	err := f.auth.EnsureAdmin(ctx)
	assert.ErrorIs(t, err, ErrAdminEmailOccupied)
}
