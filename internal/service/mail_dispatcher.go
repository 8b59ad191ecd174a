package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/campus-social/internal/mail"
	"github.com/d60-Lab/campus-social/pkg/logger"
	"github.com/d60-Lab/campus-social/pkg/metrics"
)

// Notifier 异步通知入口，业务写库后调用，不等待发送结果
type Notifier interface {
	Enqueue(msg mail.Message)
}

// MailDispatcher 有界队列 + 固定 worker；发送失败只记日志，不重试
type MailDispatcher struct {
	sender  mail.Sender
	ch      chan mail.Message
	timeout time.Duration
}

func NewMailDispatcher(sender mail.Sender, queueSize int) *MailDispatcher {
	if queueSize <= 0 {
		queueSize = 25
	}
	return &MailDispatcher{sender: sender, ch: make(chan mail.Message, queueSize), timeout: 30 * time.Second}
}

// Start 启动 workers，返回的 stop 会在短时间内等待队列排空
func (d *MailDispatcher) Start(workers int) func(context.Context) error {
	if workers <= 0 {
		workers = 5
	}
	stopCh := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case msg := <-d.ch:
					d.deliver(msg)
				case <-stopCh:
					return
				}
			}
		}()
	}
	return func(ctx context.Context) error {
		deadline := time.After(2 * time.Second)
	drain:
		for len(d.ch) > 0 {
			select {
			case <-deadline:
				break drain
			case <-ctx.Done():
				break drain
			case <-time.After(50 * time.Millisecond):
			}
		}
		close(stopCh)
		wg.Wait()
		if n := len(d.ch); n > 0 {
			logger.Warn("mail dispatcher stopped with pending messages", zap.Int("pending", n))
		}
		return nil
	}
}

func (d *MailDispatcher) deliver(msg mail.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	if err := d.sender.Send(ctx, msg); err != nil {
		metrics.MailQueue.WithLabelValues("failed").Inc()
		logger.Error("send mail failed", zap.String("to", msg.To), zap.String("subject", msg.Subject), zap.Error(err))
		return
	}
	metrics.MailQueue.WithLabelValues("sent").Inc()
}

// Enqueue 队列满时直接丢弃
func (d *MailDispatcher) Enqueue(msg mail.Message) {
	select {
	case d.ch <- msg:
	default:
		metrics.MailQueue.WithLabelValues("dropped").Inc()
		logger.Warn("mail queue full, drop message", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	}
}

// QueueLen 当前队列长度（采样值）
func (d *MailDispatcher) QueueLen() int { return len(d.ch) }
