package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/testutil"
)

func TestUserRepository_LookupsReturnNilWhenAbsent(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u, err := repo.FindByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, u)
	u, err = repo.FindByEmail(ctx, "nobody@maine.edu")
	require.NoError(t, err)
	assert.Nil(t, u)
	u, err = repo.FindByVerificationToken(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepository_RejectsForeignDomain(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)

	err := repo.Create(context.Background(), &model.User{FirstName: "x", Email: "student@gmail.com", Role: model.RoleGuest})
	assert.ErrorIs(t, err, model.ErrInvalidEmailDomain)
}

func TestUserRepository_Search(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	testutil.CreateUser(t, db, "John", "Smith")
	testutil.CreateUser(t, db, "Johanna", "Baker")
	testutil.CreateUser(t, db, "Mary", "Johnson")

	users, total, err := repo.Search(ctx, "johnsmith", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "Smith", users[0].LastName)

	users, total, err = repo.Search(ctx, "joh", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, users, 3)
	assert.Equal(t, "Johanna", users[0].FirstName)
	assert.Equal(t, "John", users[1].FirstName)
	assert.Equal(t, "Mary", users[2].FirstName)

	users, _, err = repo.Search(ctx, "joh", 2, 10)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_SearchTreatsWildcardsLiterally(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	testutil.CreateUser(t, db, "John", "Smith")
	testutil.CreateUser(t, db, "Mary", "Johnson")

	for _, q := range []string{"%", "_", "!", "j%n", "j_hn"} {
		users, total, err := repo.Search(ctx, q, 0, 10)
		require.NoError(t, err, q)
		assert.Zero(t, total, q)
		assert.Empty(t, users, q)
	}

	testutil.CreateUser(t, db, "Ann_e", "O%Neil!")
	for _, q := range []string{"_", "%", "!", "ann_e", "o%neil!"} {
		users, total, err := repo.Search(ctx, q, 0, 10)
		require.NoError(t, err, q)
		assert.Equal(t, int64(1), total, q)
		require.Len(t, users, 1, q)
		assert.Equal(t, "Ann_e", users[0].FirstName)
	}
}

func TestUserRepository_DeleteCascade(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	victim := testutil.CreateUser(t, db, "victim", "v")
	other := testutil.CreateUser(t, db, "other", "o")

	p := &model.Post{UserID: victim.ID, Content: "bye"}
	require.NoError(t, posts.Create(ctx, p))
	require.NoError(t, db.Create(&model.Comment{PostID: p.ID, UserID: other.ID, Content: "c"}).Error)
	require.NoError(t, db.Create(&model.Like{PostID: p.ID, UserID: other.ID}).Error)
	require.NoError(t, follows.Create(ctx, victim.ID, other.ID))
	require.NoError(t, follows.Create(ctx, other.ID, victim.ID))
	require.NoError(t, db.Create(&model.DirectMessage{SenderID: other.ID, ReceiverID: victim.ID, Message: "m"}).Error)

	require.NoError(t, users.DeleteCascade(ctx, victim.ID))

	u, err := users.FindByID(ctx, victim.ID)
	require.NoError(t, err)
	assert.Nil(t, u)

	var cnt int64
	for _, m := range []any{&model.Post{}, &model.Comment{}, &model.Like{}, &model.Follow{}, &model.DirectMessage{}} {
		require.NoError(t, db.Model(m).Count(&cnt).Error)
		assert.Zero(t, cnt, "%T rows left", m)
	}
	u, err = users.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.NotNil(t, u)
}
