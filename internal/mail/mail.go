package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/d60-Lab/campus-social/pkg/logger"
)

//go:embed templates/email.html
var templateFS embed.FS

var emailTemplate = template.Must(template.ParseFS(templateFS, "templates/email.html"))

// Message 一封通知邮件
type Message struct {
	To         string
	FirstName  string
	LastName   string
	Subject    string
	Body       string
	Link       string
	ButtonText string
}

// Sender 邮件发送方
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Render 渲染 HTML 正文
func Render(msg Message) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, msg); err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return buf.String(), nil
}

// LogSender 未开启邮件时使用，只记录日志
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	logger.Info("mail disabled, message logged",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("link", msg.Link))
	return nil
}
