package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/testutil"
)

func TestDirectMessages(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	me := testutil.CreateUser(t, f.db, "me", "m")
	bob := testutil.CreateUser(t, f.db, "bob", "b")
	cat := testutil.CreateUser(t, f.db, "cat", "c")

	_, err := f.message.SendDirect(ctx, me, 9999, "hi")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = f.message.SendDirect(ctx, me, bob.ID, "")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = f.message.SendDirect(ctx, me, bob.ID, "one")
	require.NoError(t, err)
	_, err = f.message.SendDirect(ctx, cat, me.ID, "two")
	require.NoError(t, err)
	_, err = f.message.SendDirect(ctx, bob, me.ID, "three")
	require.NoError(t, err)

	recent, err := f.message.RecentConversations(ctx, me)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, bob.ID, recent[0].UserID)
	assert.Equal(t, "three", recent[0].LastMessage)
	assert.Equal(t, cat.ID, recent[1].UserID)

	hist, err := f.message.History(ctx, me, bob.ID, 0)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "one", hist[0].Content)
	assert.Equal(t, me.ID, hist[0].UserID)
	assert.Equal(t, "three", hist[1].Content)
}

func TestGroups(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	owner := testutil.CreateUser(t, f.db, "owner", "o")
	friend := testutil.CreateUser(t, f.db, "friend", "f")
	outsider := testutil.CreateUser(t, f.db, "outsider", "x")

	g, err := f.group.CreateGroup(ctx, owner, "  ")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultGroupName, g.Name)

	_, err = f.group.Send(ctx, friend, g.ID, "let me in")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, f.group.Invite(ctx, outsider, g.ID, friend.ID), ErrForbidden)
	assert.ErrorIs(t, f.group.Invite(ctx, owner, 9999, friend.ID), ErrGroupNotFound)
	assert.ErrorIs(t, f.group.Invite(ctx, owner, g.ID, 9999), ErrUserNotFound)

	require.NoError(t, f.group.Invite(ctx, owner, g.ID, friend.ID))
	require.NoError(t, f.group.Invite(ctx, owner, g.ID, friend.ID))

	_, err = f.group.Send(ctx, friend, g.ID, "hello all")
	require.NoError(t, err)
	_, err = f.group.Send(ctx, owner, g.ID, "welcome")
	require.NoError(t, err)

	hist, err := f.group.History(ctx, friend, g.ID, 10)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "hello all", hist[0].Content)
	assert.Equal(t, "owner", hist[1].FirstName)

	_, err = f.group.History(ctx, outsider, g.ID, 10)
	assert.ErrorIs(t, err, ErrForbidden)

	groups, err := f.group.ListGroups(ctx, friend)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(2), groups[0].Members)
}
