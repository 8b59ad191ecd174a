package model

import (
	"errors"
	"fmt"
	"time"
)

type ReportType string

const (
	ReportedUser    ReportType = "REPORTED_USER"
	ReportedPost    ReportType = "REPORTED_POST"
	ReportedComment ReportType = "REPORTED_COMMENT"
)

const MaxReportReasonLength = 280

var ErrUnknownReportType = errors.New("unknown report type")

var reportReasons = map[ReportType][]string{
	ReportedPost:    {"Inappropriate Content", "Spamming", "Harassment", "Violence", "Misinformation"},
	ReportedComment: {"Inappropriate Content", "Spamming", "Harassment", "False Information"},
	ReportedUser:    {"Impersonation", "Harassment", "Hate Speech", "Fake Account", "Suspicious Activity"},
}

func ParseReportType(s string) (ReportType, error) {
	t := ReportType(s)
	if _, ok := reportReasons[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownReportType, s)
	}
	return t, nil
}

func (t ReportType) Reasons() []string {
	return append([]string(nil), reportReasons[t]...)
}

func (t ReportType) ReasonByID(id int) (string, error) {
	rs := reportReasons[t]
	if id < 0 || id >= len(rs) {
		return "", fmt.Errorf("reason id %d out of range for %s", id, t)
	}
	return rs[id], nil
}

// ReportTarget 被举报对象，ID 的含义由 Type 决定
type ReportTarget struct {
	Type ReportType
	ID   uint
}

type Report struct {
	ID         uint       `gorm:"primaryKey;column:report_id"`
	ReporterID uint       `gorm:"not null;index"`
	ReportType ReportType `gorm:"column:report_type;type:varchar(32);not null;index:idx_report_target,priority:1"`
	ReportedID uint       `gorm:"column:reported_id;not null;index:idx_report_target,priority:2"`
	Reason     string     `gorm:"size:280"`
	Timestamp  time.Time  `gorm:"autoCreateTime;column:timestamp"`
}

func (Report) TableName() string { return "usm_social_reports" }

func (r *Report) Target() ReportTarget { return ReportTarget{Type: r.ReportType, ID: r.ReportedID} }
