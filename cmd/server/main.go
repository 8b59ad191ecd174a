package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/campus-social/config"
	"github.com/d60-Lab/campus-social/internal/api/handler"
	"github.com/d60-Lab/campus-social/internal/api/router"
	"github.com/d60-Lab/campus-social/internal/cache"
	"github.com/d60-Lab/campus-social/internal/mail"
	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/oauth"
	"github.com/d60-Lab/campus-social/internal/repository"
	"github.com/d60-Lab/campus-social/internal/service"
	"github.com/d60-Lab/campus-social/pkg/database"
	"github.com/d60-Lab/campus-social/pkg/jwt"
	"github.com/d60-Lab/campus-social/pkg/logger"
	"github.com/d60-Lab/campus-social/pkg/tracing"
)

// @title Campus Social API
// @version 1.0
// @description University social network: posts, follows, messaging and moderation.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	model.SetEmailPolicy(model.EmailPolicy{Suffix: cfg.Campus.EmailSuffix, AdminSentinel: cfg.Admin.Email})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sentryOn := cfg.Sentry.DSN != ""
	if sentryOn {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN, Environment: cfg.Sentry.Environment}); err != nil {
			return fmt.Errorf("init sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.Init(ctx, tracing.Config{
			Endpoint:    cfg.Tracing.Endpoint,
			ServiceName: cfg.Tracing.ServiceName,
			Insecure:    cfg.Tracing.Insecure,
		})
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(sctx)
		}()
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer rdb.Close()
	}
	counts := cache.NewFollowCounts(rdb, cfg.Redis.TTL)

	var sender mail.Sender = mail.LogSender{}
	if cfg.Mail.Enabled {
		sender = mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		})
	}
	dispatcher := service.NewMailDispatcher(sender, cfg.Mail.QueueSize)
	stopMail := dispatcher.Start(cfg.Mail.Workers)

	users := repository.NewUserRepository(db)
	follows := repository.NewFollowRepository(db)
	posts := repository.NewPostRepository(db)
	comments := repository.NewCommentRepository(db)
	likes := repository.NewLikeRepository(db)

	tokens := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TTL)
	authService := service.NewAuthService(users, tokens, dispatcher, service.AuthConfig{
		APIBaseURL:      cfg.Mail.APIBaseURL,
		FrontendBaseURL: cfg.Mail.FrontendBaseURL,
		AdminEmail:      cfg.Admin.Email,
		AdminPassword:   cfg.Admin.Password,
	})
	if err := authService.EnsureAdmin(ctx); err != nil {
		return err
	}
	postService := service.NewPostService(posts, comments, likes)

	svc := handler.Services{
		Auth:     authService,
		User:     service.NewUserService(users, follows),
		Relation: service.NewRelationshipService(follows, users, counts),
		Post:     postService,
		Message:  service.NewMessageService(repository.NewMessageRepository(db), users),
		Group:    service.NewGroupService(repository.NewGroupRepository(db), users),
		Report:   service.NewReportService(repository.NewReportRepository(db), users, posts, comments),
		Admin:    service.NewAdminService(users, follows, postService, counts),
		DB:       sqlDB,
	}
	if g := oauth.NewGoogle(cfg.OAuth.GoogleClientID, cfg.OAuth.GoogleClientSecret, cfg.OAuth.GoogleRedirectURL); g != nil {
		svc.Google = g
	}

	engine, err := router.Setup(handler.New(svc), authService, router.Options{
		Mode:         cfg.Server.Mode,
		CORSOrigins:  cfg.Server.CORSOrigins,
		RateLimitRPS: cfg.Server.RateLimitRPS,
		RateBurst:    cfg.Server.RateBurst,
		Sentry:       sentryOn,
		Tracing:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Tracing.ServiceName,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	if err := stopMail(shutdownCtx); err != nil {
		logger.Warn("mail queue not drained", zap.Error(err))
	}
	return nil
}
