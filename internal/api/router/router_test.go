package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/campus-social/internal/api/handler"
	"github.com/d60-Lab/campus-social/internal/api/middleware"
	"github.com/d60-Lab/campus-social/internal/mail"
	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/repository"
	"github.com/d60-Lab/campus-social/internal/service"
	"github.com/d60-Lab/campus-social/internal/testutil"
	"github.com/d60-Lab/campus-social/pkg/jwt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type discardNotifier struct{}

func (discardNotifier) Enqueue(mail.Message) {}

type app struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
	tokens *jwt.Manager
	auth   service.AuthService
	users  repository.UserRepository
}

func newApp(t *testing.T) *app {
	t.Helper()
	db := testutil.NewDB(t)
	users := repository.NewUserRepository(db)
	follows := repository.NewFollowRepository(db)
	posts := repository.NewPostRepository(db)
	comments := repository.NewCommentRepository(db)
	likes := repository.NewLikeRepository(db)
	tokens := jwt.NewManager(testSecret, 3*time.Hour)

	auth := service.NewAuthService(users, tokens, discardNotifier{}, service.AuthConfig{
		APIBaseURL:      "http://localhost:8080",
		FrontendBaseURL: "http://localhost:3000",
		AdminEmail:      "admin",
		AdminPassword:   "admin-password",
	})
	postService := service.NewPostService(posts, comments, likes)
	h := handler.New(handler.Services{
		Auth:     auth,
		User:     service.NewUserService(users, follows),
		Relation: service.NewRelationshipService(follows, users, nil),
		Post:     postService,
		Message:  service.NewMessageService(repository.NewMessageRepository(db), users),
		Group:    service.NewGroupService(repository.NewGroupRepository(db), users),
		Report:   service.NewReportService(repository.NewReportRepository(db), users, posts, comments),
		Admin:    service.NewAdminService(users, follows, postService, nil),
	})
	engine, err := Setup(h, auth, Options{Mode: gin.TestMode})
	require.NoError(t, err)
	return &app{t: t, db: db, engine: engine, tokens: tokens, auth: auth, users: users}
}

func idStr(id uint) string { return strconv.FormatUint(uint64(id), 10) }

func (a *app) token(u *model.User) string {
	tok, err := a.tokens.Issue(u.Email)
	require.NoError(a.t, err)
	return tok
}

func (a *app) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

type actionBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func action(t *testing.T, w *httptest.ResponseRecorder) actionBody {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var b actionBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return b
}

func data[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var env struct {
		Code int `json:"code"`
		Data T   `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Zero(t, env.Code)
	return env.Data
}

func TestRegisterAndAuthenticate(t *testing.T) {
	a := newApp(t)

	w := a.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"first_name": "Sam", "last_name": "Student", "email": "student@maine.edu", "password": "password123",
	}, "")
	tok := data[struct {
		Token string `json:"token"`
	}](t, w).Token
	sub, err := a.tokens.Subject(tok)
	require.NoError(t, err)
	assert.Equal(t, "student@maine.edu", sub)

	w = a.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"first_name": "Out", "last_name": "Sider", "email": "someone@gmail.com", "password": "password123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"first_name": "Sam", "last_name": "Again", "email": "student@maine.edu", "password": "password123",
	}, "")
	assert.Equal(t, response0(t, w), "An account with this email already exists.")

	w = a.do(http.MethodPost, "/api/v1/auth/authenticate", map[string]string{"email": "student@maine.edu", "password": "wrong-password"}, "")
	assert.Equal(t, "Invalid email or password.", response0(t, w))

	w = a.do(http.MethodPost, "/api/v1/auth/authenticate", map[string]string{"email": "student@maine.edu", "password": "password123"}, "")
	assert.NotEmpty(t, data[map[string]string](t, w)["token"])

	// 未验证的 GUEST 不能访问 /user
	w = a.do(http.MethodGet, "/api/v1/user/profile", nil, tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminEmailCannotBeClaimed(t *testing.T) {
	a := newApp(t)

	w := a.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"first_name": "Mal", "last_name": "Lory", "email": "admin", "password": "password123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	student := testutil.CreateUser(t, a.db, "sam", "s")
	w = a.do(http.MethodPut, "/api/v1/user/profile", map[string]string{"email": "admin"}, a.token(student))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stored, err := a.users.FindByID(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.Email, stored.Email)

	require.NoError(t, a.auth.EnsureAdmin(context.Background()))
	admin, err := a.users.FindByEmail(context.Background(), "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, model.RoleAdmin, admin.Role)
}

func response0(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	b := action(t, w)
	assert.Equal(t, 0, b.Status)
	return b.Message
}

func TestExpiredToken(t *testing.T) {
	a := newApp(t)
	u := testutil.CreateUser(t, a.db, "late", "l")
	expired, err := jwt.NewManager(testSecret, -time.Minute).Issue(u.Email)
	require.NoError(t, err)

	w := a.do(http.MethodGet, "/api/v1/user/profile", nil, expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":0,"message":"`+middleware.MsgTokenExpired+`"}`, w.Body.String())

	w = a.do(http.MethodGet, "/api/v1/user/profile", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFollowFlow(t *testing.T) {
	a := newApp(t)
	db := a.db
	alice := testutil.CreateUser(t, db, "alice", "a")
	bob := testutil.CreateUser(t, db, "bob", "b")
	tok := a.token(alice)
	followPath := "/api/v1/user/follow/" + idStr(bob.ID)

	assert.Equal(t, 1, action(t, a.do(http.MethodPost, followPath, nil, tok)).Status)
	assert.Equal(t, "You are already following this user.", response0(t, a.do(http.MethodPost, followPath, nil, tok)))
	assert.Equal(t, "You cannot follow yourself.", response0(t, a.do(http.MethodPost, "/api/v1/user/follow/"+idStr(alice.ID), nil, tok)))

	count := data[map[string]int64](t, a.do(http.MethodGet, "/api/v1/user/count/followers/"+idStr(bob.ID), nil, tok))
	assert.Equal(t, int64(1), count["count"])

	page := data[model.Page[model.UserSummary]](t, a.do(http.MethodGet, "/api/v1/user/followers/"+idStr(bob.ID)+"?page=1&page_size=5", nil, tok))
	require.Len(t, page.Items, 1)
	assert.Equal(t, alice.ID, page.Items[0].ID)

	info := data[model.UserInfoView](t, a.do(http.MethodGet, "/api/v1/user/info/"+idStr(bob.ID), nil, tok))
	assert.True(t, info.IsFollowing)
	assert.False(t, info.IsOwnProfile)

	unfollowPath := "/api/v1/user/unfollow/" + idStr(bob.ID)
	assert.Equal(t, 1, action(t, a.do(http.MethodDelete, unfollowPath, nil, tok)).Status)
	assert.Equal(t, 1, action(t, a.do(http.MethodDelete, unfollowPath, nil, tok)).Status)

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/api/v1/user/follow/abc", nil, tok).Code)
}

func TestPostLikeAndDelete(t *testing.T) {
	a := newApp(t)
	db := a.db
	author := testutil.CreateUser(t, db, "author", "a")
	reader := testutil.CreateUser(t, db, "reader", "r")
	authorTok, readerTok := a.token(author), a.token(reader)

	before := time.Now().UTC().Add(-time.Minute)
	assert.Equal(t, 1, action(t, a.do(http.MethodPost, "/api/v1/post/create", map[string]string{"content": "hello campus"}, authorTok)).Status)

	feed := data[service.FeedPage](t, a.do(http.MethodGet, "/api/v1/post/recommended?page=1&page_size=10", nil, readerTok))
	require.Len(t, feed.Items, 1)
	post := feed.Items[0]
	assert.Equal(t, "hello campus", post.Content)
	assert.False(t, feed.DateTimeFetch.IsZero())

	like := map[string]uint{"id": post.ID}
	assert.Equal(t, 1, action(t, a.do(http.MethodPost, "/api/v1/post/like", like, readerTok)).Status)
	assert.Equal(t, "User has already liked this post.", response0(t, a.do(http.MethodPost, "/api/v1/post/like", like, readerTok)))

	got := data[model.PostView](t, a.do(http.MethodGet, "/api/v1/post/"+idStr(post.ID), nil, readerTok))
	assert.Equal(t, int64(1), got.LikeCount)
	assert.True(t, got.IsLiked)

	assert.Equal(t, 1, action(t, a.do(http.MethodPost, "/api/v1/post/unlike", like, readerTok)).Status)
	assert.Equal(t, "User has not liked this post.", response0(t, a.do(http.MethodPost, "/api/v1/post/unlike", like, readerTok)))
	assert.Equal(t, "Could not find post to like.", response0(t, a.do(http.MethodPost, "/api/v1/post/like", map[string]uint{"id": 9999}, readerTok)))

	assert.Equal(t, 1, action(t, a.do(http.MethodPost, "/api/v1/post/comment", map[string]any{"id": post.ID, "content": "nice"}, readerTok)).Status)

	q := url.Values{}
	q.Set("last_fetch", before.Format(time.RFC3339Nano))
	q.Set("server_date_time", time.Now().UTC().Add(time.Minute).Format(time.RFC3339Nano))
	fresh := data[service.NewPosts](t, a.do(http.MethodGet, "/api/v1/post/new/recommended?"+q.Encode(), nil, readerTok))
	require.Len(t, fresh.Posts, 1)
	require.Len(t, fresh.Posts[0].Comments, 1)
	cnt := data[service.NewPostCount](t, a.do(http.MethodGet, "/api/v1/post/new/user/"+idStr(author.ID)+"/count?"+q.Encode(), nil, readerTok))
	assert.Equal(t, int64(1), cnt.Count)

	q.Set("last_fetch", time.Now().UTC().Add(time.Minute).Format(time.RFC3339Nano))
	q.Set("server_date_time", time.Now().UTC().Add(2*time.Minute).Format(time.RFC3339Nano))
	fresh = data[service.NewPosts](t, a.do(http.MethodGet, "/api/v1/post/new/recommended?"+q.Encode(), nil, readerTok))
	assert.Empty(t, fresh.Posts)

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/api/v1/post/new/recommended", nil, readerTok).Code)

	target := map[string]uint{"id": post.ID}
	assert.Equal(t, "You are not authorized to delete this post.", response0(t, a.do(http.MethodDelete, "/api/v1/post/delete", target, readerTok)))
	assert.Equal(t, 1, action(t, a.do(http.MethodDelete, "/api/v1/post/delete", target, authorTok)).Status)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/api/v1/post/"+idStr(post.ID), nil, readerTok).Code)

	n := data[map[string]int64](t, a.do(http.MethodGet, "/api/v1/post/count/user/"+idStr(author.ID), nil, readerTok))
	assert.Zero(t, n["count"])
}

func TestMessaging(t *testing.T) {
	a := newApp(t)
	db := a.db
	me := testutil.CreateUser(t, db, "me", "m")
	pal := testutil.CreateUser(t, db, "pal", "p")
	meTok, palTok := a.token(me), a.token(pal)

	assert.Equal(t, 1, action(t, a.do(http.MethodPost, "/api/v1/message/user/"+idStr(pal.ID), map[string]string{"content": "hey"}, meTok)).Status)
	assert.Equal(t, "Unable to send message to user.", response0(t, a.do(http.MethodPost, "/api/v1/message/user/9999", map[string]string{"content": "hey"}, meTok)))

	recent := data[[]model.ConversationSummary](t, a.do(http.MethodGet, "/api/v1/message/recent", nil, palTok))
	require.Len(t, recent, 1)
	assert.Equal(t, me.ID, recent[0].UserID)

	hist := data[[]model.MessageView](t, a.do(http.MethodGet, "/api/v1/message/fetch/user/"+idStr(me.ID), nil, palTok))
	require.Len(t, hist, 1)
	assert.Equal(t, "hey", hist[0].Content)

	g := data[model.GroupView](t, a.do(http.MethodPost, "/api/v1/message/create/group", nil, meTok))
	assert.Equal(t, model.DefaultGroupName, g.Name)
	groupPath := "/api/v1/message/group/" + idStr(g.ID)

	assert.Equal(t, "Unable to access the group.", response0(t, a.do(http.MethodPost, groupPath, map[string]string{"content": "hi"}, palTok)))
	assert.Equal(t, 1, action(t, a.do(http.MethodPost, "/api/v1/message/invite/"+idStr(g.ID)+"/"+idStr(pal.ID), nil, meTok)).Status)
	assert.Equal(t, 1, action(t, a.do(http.MethodPost, groupPath, map[string]string{"content": "hi"}, palTok)).Status)

	msgs := data[[]model.MessageView](t, a.do(http.MethodGet, "/api/v1/message/fetch/group/"+idStr(g.ID), nil, meTok))
	require.Len(t, msgs, 1)
	groups := data[[]model.GroupView](t, a.do(http.MethodGet, "/api/v1/message/groups", nil, palTok))
	require.Len(t, groups, 1)
	assert.Equal(t, int64(2), groups[0].Members)
}

func TestAdminRoutes(t *testing.T) {
	a := newApp(t)
	db := a.db
	require.NoError(t, a.auth.EnsureAdmin(context.Background()))
	admin, err := a.users.FindByEmail(context.Background(), "admin")
	require.NoError(t, err)
	student := testutil.CreateUser(t, db, "stu", "s")
	victim := testutil.CreateUser(t, db, "victim", "v")
	adminTok, studentTok := a.token(admin), a.token(student)

	assert.Equal(t, http.StatusForbidden, a.do(http.MethodGet, "/api/v1/admin/reports/users", nil, studentTok).Code)
	assert.Equal(t, http.StatusForbidden, a.do(http.MethodGet, "/api/v1/staff/reports/users", nil, studentTok).Code)

	report := map[string]any{"report_type": "REPORTED_USER", "target_id": victim.ID, "reason_id": 1}
	assert.Equal(t, 1, action(t, a.do(http.MethodPost, "/api/v1/user/report", report, studentTok)).Status)
	report["reason_id"] = 99
	assert.Equal(t, 0, action(t, a.do(http.MethodPost, "/api/v1/user/report", report, studentTok)).Status)

	reports := data[[]model.ReportView](t, a.do(http.MethodGet, "/api/v1/admin/reports/users", nil, adminTok))
	require.Len(t, reports, 1)
	assert.Len(t, data[[]model.ReportView](t, a.do(http.MethodGet, "/api/v1/staff/reports/users", nil, adminTok)), 1)
	assert.Equal(t, "Harassment", reports[0].ReportReason)

	del := map[string]uint{"target_id": victim.ID}
	assert.Equal(t, 1, action(t, a.do(http.MethodPost, "/api/v1/admin/delete_user", del, adminTok)).Status)
	assert.Equal(t, "User could not be found.", response0(t, a.do(http.MethodPost, "/api/v1/admin/delete_user", del, adminTok)))
	assert.Equal(t, "Administrator accounts cannot be deleted.", response0(t, a.do(http.MethodPost, "/api/v1/admin/delete_user", map[string]uint{"target_id": admin.ID}, adminTok)))
	assert.Equal(t, "Post could not be found.", response0(t, a.do(http.MethodPost, "/api/v1/admin/delete_post", map[string]uint{"target_id": 4242}, adminTok)))

	reports = data[[]model.ReportView](t, a.do(http.MethodGet, "/api/v1/admin/reports/users", nil, adminTok))
	assert.Empty(t, reports)
}

func TestPublicEndpoints(t *testing.T) {
	a := newApp(t)
	assert.Equal(t, "Test Response", data[string](t, a.do(http.MethodGet, "/api/v1/test", nil, "")))
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/health", nil, "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/metrics", nil, "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/swagger/doc.json", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/api/v1/auth/oauth2/google", nil, "").Code)

	w := a.do(http.MethodGet, "/api/v1/verify/not-a-token", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, action(t, a.do(http.MethodPost, "/api/v1/reset_password", map[string]string{"email": "nobody@maine.edu"}, "")).Status)
}
