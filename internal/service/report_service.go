package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/repository"
	"github.com/d60-Lab/campus-social/pkg/metrics"
)

// ReportInput Reason 为空时使用 ReasonID 对应的预置原因
type ReportInput struct {
	Target   model.ReportTarget
	Reason   string
	ReasonID *int
}

type ReportService interface {
	Report(ctx context.Context, reporter *model.User, in ReportInput) (*model.Report, error)
	// List 目标已不存在的举报直接跳过
	List(ctx context.Context, t model.ReportType) ([]model.ReportView, error)
}

type reportService struct {
	reports  repository.ReportRepository
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	now      func() time.Time
}

func NewReportService(reports repository.ReportRepository, users repository.UserRepository, posts repository.PostRepository, comments repository.CommentRepository) ReportService {
	return &reportService{
		reports:  reports,
		users:    users,
		posts:    posts,
		comments: comments,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *reportService) Report(ctx context.Context, reporter *model.User, in ReportInput) (*model.Report, error) {
	if reporter == nil {
		return nil, ErrUnauthorized
	}
	if _, err := model.ParseReportType(string(in.Target.Type)); err != nil {
		return nil, ErrInvalidReportReason
	}

	reason := strings.TrimSpace(in.Reason)
	if reason == "" && in.ReasonID != nil {
		r, err := in.Target.Type.ReasonByID(*in.ReasonID)
		if err != nil {
			return nil, ErrInvalidReportReason
		}
		reason = r
	}
	if reason == "" {
		return nil, ErrInvalidReportReason
	}
	if utf8.RuneCountInString(reason) > model.MaxReportReasonLength {
		return nil, ErrContentTooLong
	}

	owner, err := s.resolveOwner(ctx, in.Target)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrReportTargetNotFound
	}

	rep := &model.Report{
		ReporterID: reporter.ID,
		ReportType: in.Target.Type,
		ReportedID: in.Target.ID,
		Reason:     reason,
		Timestamp:  s.now(),
	}
	if err := s.reports.Create(ctx, rep); err != nil {
		return nil, err
	}
	metrics.ReportsFiled.WithLabelValues(string(rep.ReportType)).Inc()
	return rep, nil
}

// resolveOwner 返回被举报对象的所属用户；对象不存在时返回 nil
func (s *reportService) resolveOwner(ctx context.Context, target model.ReportTarget) (*model.User, error) {
	switch target.Type {
	case model.ReportedUser:
		return s.users.FindByID(ctx, target.ID)
	case model.ReportedPost:
		p, err := s.posts.FindByID(ctx, target.ID)
		if err != nil || p == nil {
			return nil, err
		}
		return &p.User, nil
	case model.ReportedComment:
		c, err := s.comments.FindByID(ctx, target.ID)
		if err != nil || c == nil {
			return nil, err
		}
		return &c.User, nil
	}
	return nil, nil
}

func (s *reportService) List(ctx context.Context, t model.ReportType) ([]model.ReportView, error) {
	reports, err := s.reports.ListByType(ctx, t)
	if err != nil {
		return nil, err
	}
	out := make([]model.ReportView, 0, len(reports))
	for _, r := range reports {
		owner, err := s.resolveOwner(ctx, r.Target())
		if err != nil {
			return nil, err
		}
		if owner == nil || owner.ID == 0 {
			continue
		}
		out = append(out, model.ReportView{
			ReportID:     r.ID,
			ReportType:   r.ReportType,
			ReportedID:   r.ReportedID,
			ReportReason: r.Reason,
			FirstName:    owner.FirstName,
			LastName:     owner.LastName,
			Timestamp:    r.Timestamp,
		})
	}
	return out, nil
}
