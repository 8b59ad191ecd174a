package router

import (
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/d60-Lab/campus-social/docs"
	"github.com/d60-Lab/campus-social/internal/api/handler"
	"github.com/d60-Lab/campus-social/internal/api/middleware"
	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/pkg/metrics"
)

type Options struct {
	Mode         string
	CORSOrigins  []string
	RateLimitRPS float64
	RateBurst    int
	Sentry       bool
	Tracing      bool
	ServiceName  string
}

var memberRoles = []model.Role{model.RoleStudent, model.RoleAlumni, model.RoleStaff, model.RoleFaculty, model.RoleAdmin}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

// Setup 注册中间件与全部路由
func Setup(h *handler.Handler, auth middleware.TokenResolver, opts Options) (*gin.Engine, error) {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.Recovery())
	if opts.Sentry {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if opts.Tracing {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	r.Use(middleware.Logger(), metrics.Middleware())
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))
	r.Use(gzip.Gzip(gzip.DefaultCompression), middleware.RateLimit(opts.RateLimitRPS, opts.RateBurst))

	r.GET("/health", h.Health)
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.GET("/test", h.Test)

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/authenticate", h.Authenticate)
		authGroup.GET("/oauth2/google", h.GoogleLogin)
		authGroup.GET("/register/oauth2/", h.GoogleCallback)
	}
	v1.GET("/verify/:token", h.Verify)
	v1.POST("/reset_password", h.ResetPassword)
	v1.POST("/change_password/:token", h.ChangePassword)

	authenticated := middleware.Auth(auth)

	user := v1.Group("/user", authenticated, middleware.RequireRoles(memberRoles...))
	{
		user.GET("/info/:id", h.UserInfo)
		user.GET("/profile", h.MyProfile)
		user.PUT("/profile", h.UpdateProfile)
		user.GET("/profile_picture", h.ProfilePicture)
		user.PATCH("/profile_picture", h.UploadProfilePicture)
		user.GET("/search", h.SearchUsers)
		user.POST("/follow/:id", h.Follow)
		user.DELETE("/unfollow/:id", h.Unfollow)
		user.GET("/followers/:id", h.ListFollowers)
		user.GET("/followings/:id", h.ListFollowings)
		user.GET("/count/followers/:id", h.CountFollowers)
		user.GET("/count/followings/:id", h.CountFollowings)
		user.POST("/report", h.Report)
	}

	post := v1.Group("/post", authenticated, middleware.RequireRoles(memberRoles...))
	{
		post.POST("/create", h.CreatePost)
		post.POST("/comment", h.CreateComment)
		post.GET("/recommended", h.RecommendedPosts)
		post.GET("/new/recommended", h.NewRecommendedPosts)
		post.GET("/new/recommended/count", h.NewRecommendedCount)
		post.GET("/user/:id", h.UserPosts)
		post.GET("/new/user/:id", h.NewUserPosts)
		post.GET("/new/user/:id/count", h.NewUserPostCount)
		post.GET("/count/user/:id", h.UserPostCount)
		post.POST("/like", h.LikePost)
		post.POST("/unlike", h.UnlikePost)
		post.DELETE("/delete", h.DeletePost)
		post.GET("/:id", h.GetPost)
	}

	message := v1.Group("/message", authenticated)
	{
		message.POST("/user/:id", h.SendDirectMessage)
		message.GET("/recent", h.RecentConversations)
		message.GET("/fetch/user/:id", h.DirectHistory)
		message.POST("/create/group", h.CreateGroup)
		message.POST("/invite/:groupId/:userId", h.InviteToGroup)
		message.POST("/group/:groupId", h.SendGroupMessage)
		message.GET("/fetch/group/:groupId", h.GroupHistory)
		message.GET("/groups", h.MyGroups)
	}

	admin := v1.Group("/admin", authenticated, middleware.RequireRoles(model.RoleAdmin))
	{
		admin.POST("/delete_user", h.AdminDeleteUser)
		admin.POST("/delete_post", h.AdminDeletePost)
		admin.GET("/reports/users", h.UserReports)
		admin.GET("/reports/posts", h.PostReports)
		admin.GET("/reports/comments", h.CommentReports)
	}

	// 教职工只读审核视图
	staff := v1.Group("/staff", authenticated, middleware.RequireRoles(model.RoleStaff, model.RoleFaculty, model.RoleAdmin))
	{
		staff.GET("/reports/users", h.UserReports)
		staff.GET("/reports/posts", h.PostReports)
		staff.GET("/reports/comments", h.CommentReports)
	}

	return r, nil
}
