package service

import (
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/campus-social/internal/cache"
	"github.com/d60-Lab/campus-social/internal/mail"
	"github.com/d60-Lab/campus-social/internal/repository"
	"github.com/d60-Lab/campus-social/internal/testutil"
	"github.com/d60-Lab/campus-social/pkg/jwt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []mail.Message
}

func (n *recordingNotifier) Enqueue(msg mail.Message) {
	n.mu.Lock()
	n.msgs = append(n.msgs, msg)
	n.mu.Unlock()
}

func (n *recordingNotifier) last() mail.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.msgs) == 0 {
		return mail.Message{}
	}
	return n.msgs[len(n.msgs)-1]
}

type fixture struct {
	db       *gorm.DB
	tokens   *jwt.Manager
	notifier *recordingNotifier

	users    repository.UserRepository
	follows  repository.FollowRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	likes    repository.LikeRepository

	auth     AuthService
	user     UserService
	relation RelationshipService
	post     PostService
	message  MessageService
	group    GroupService
	report   ReportService
	admin    AdminService
}

func newFixture(t *testing.T, counts *cache.FollowCounts) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := &fixture{
		db:       db,
		tokens:   jwt.NewManager(testSecret, 3*time.Hour),
		notifier: &recordingNotifier{},
		users:    repository.NewUserRepository(db),
		follows:  repository.NewFollowRepository(db),
		posts:    repository.NewPostRepository(db),
		comments: repository.NewCommentRepository(db),
		likes:    repository.NewLikeRepository(db),
	}
	f.auth = NewAuthService(f.users, f.tokens, f.notifier, AuthConfig{
		APIBaseURL:      "http://localhost:8080",
		FrontendBaseURL: "https://social.example.edu",
		AdminEmail:      "admin",
		AdminPassword:   "admin-password",
	})
	f.user = NewUserService(f.users, f.follows)
	f.relation = NewRelationshipService(f.follows, f.users, counts)
	f.post = NewPostService(f.posts, f.comments, f.likes)
	f.message = NewMessageService(repository.NewMessageRepository(db), f.users)
	f.group = NewGroupService(repository.NewGroupRepository(db), f.users)
	f.report = NewReportService(repository.NewReportRepository(db), f.users, f.posts, f.comments)
	f.admin = NewAdminService(f.users, f.follows, f.post, counts)
	return f
}
