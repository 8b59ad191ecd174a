package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/campus-social/internal/mail"
)

type stubSender struct {
	mu       sync.Mutex
	sent     []string
	attempts int
	fail     bool
}

func (s *stubSender) Send(ctx context.Context, msg mail.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	if s.fail {
		return errors.New("smtp down")
	}
	s.sent = append(s.sent, msg.To)
	return nil
}

func (s *stubSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func TestMailDispatcher_Delivers(t *testing.T) {
	sender := &stubSender{}
	d := NewMailDispatcher(sender, 10)
	stop := d.Start(2)

	for i := 0; i < 5; i++ {
		d.Enqueue(mail.Message{To: "a@maine.edu"})
	}
	require.Eventually(t, func() bool { return sender.count() == 5 }, time.Second, 10*time.Millisecond)
	require.NoError(t, stop(context.Background()))
}

func TestMailDispatcher_DropsWhenFull(t *testing.T) {
	d := NewMailDispatcher(&stubSender{}, 2)

	// 未启动 worker，队列满后直接丢弃且不阻塞
	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			d.Enqueue(mail.Message{To: "x@maine.edu"})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked")
	}
	assert.Equal(t, 2, d.QueueLen())
}

func TestMailDispatcher_FailuresDoNotStopWorkers(t *testing.T) {
	sender := &stubSender{fail: true}
	d := NewMailDispatcher(sender, 4)
	stop := d.Start(1)

	d.Enqueue(mail.Message{To: "a@maine.edu"})
	require.Eventually(t, func() bool {
		sender.mu.Lock()
		defer sender.mu.Unlock()
		return sender.attempts == 1
	}, time.Second, 10*time.Millisecond)
	assert.Zero(t, sender.count())

	sender.mu.Lock()
	sender.fail = false
	sender.mu.Unlock()
	d.Enqueue(mail.Message{To: "b@maine.edu"})
	require.Eventually(t, func() bool { return sender.count() == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, stop(context.Background()))
}
