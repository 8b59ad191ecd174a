package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/testutil"
)

func TestFollowRepository_CreateListCount(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := testutil.CreateUser(t, db, "alice", "a")
	b := testutil.CreateUser(t, db, "bob", "b")
	c := testutil.CreateUser(t, db, "carol", "c")

	require.NoError(t, repo.Create(ctx, a.ID, b.ID))
	require.NoError(t, repo.Create(ctx, c.ID, b.ID))
	require.NoError(t, repo.Create(ctx, b.ID, a.ID))

	assert.Error(t, repo.Create(ctx, a.ID, b.ID), "duplicate edge must conflict")
	assert.ErrorIs(t, repo.Create(ctx, a.ID, a.ID), model.ErrSelfFollow)

	ok, err := repo.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Exists(ctx, b.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := repo.CountFollowers(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	n, err = repo.CountFollowings(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	fans, err := repo.ListFollowers(ctx, b.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, fans, 2)

	deleted, err := repo.Delete(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	deleted, err = repo.Delete(ctx, a.ID, b.ID)
	require.NoError(t, err, "deleting a missing edge is a no-op")
	assert.Zero(t, deleted)
	n, err = repo.CountFollowers(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestFollowRepository_ListNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	target := testutil.CreateUser(t, db, "target", "t")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var ids []uint
	for i := 0; i < 3; i++ {
		u := testutil.CreateUser(t, db, fmt.Sprintf("f%d", i), "x")
		require.NoError(t, db.Create(&model.Follow{FollowerID: u.ID, FollowingID: target.ID, Timestamp: base.Add(time.Duration(i) * time.Minute)}).Error)
		ids = append(ids, u.ID)
	}

	page, err := repo.ListFollowers(ctx, target.ID, 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].FollowerID)
	assert.Equal(t, ids[1], page[1].FollowerID)

	rest, err := repo.ListFollowers(ctx, target.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, ids[0], rest[0].FollowerID)
}

func BenchmarkFollowWrite(b *testing.B) {
	db := testutil.NewDB(b)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	users := make([]*model.User, 200)
	for i := range users {
		users[i] = testutil.CreateUser(b, db, fmt.Sprintf("u%04d", i), "bench")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := users[rng.Intn(len(users))].ID
		to := users[rng.Intn(len(users))].ID
		if from == to {
			continue
		}
		_ = repo.Create(ctx, from, to)
	}
}

func BenchmarkListFollowers(b *testing.B) {
	db := testutil.NewDB(b)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	const n = 1000
	u0 := testutil.CreateUser(b, db, "u0", "bench")
	for i := 1; i <= n; i++ {
		u := testutil.CreateUser(b, db, fmt.Sprintf("u%d", i), "bench")
		_ = repo.Create(ctx, u.ID, u0.ID)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = repo.ListFollowers(ctx, u0.ID, 0, 50)
	}
}
