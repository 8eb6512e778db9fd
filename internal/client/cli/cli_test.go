package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/riffle/internal/client/connectivity"
	"github.com/iudanet/riffle/internal/client/iocli"
	"github.com/iudanet/riffle/internal/client/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingIO собирает весь вывод команды в буфер и отдает
// заготовленные ответы на интерактивные вопросы по порядку
func recordingIO(inputs ...string) (*iocli.IOMock, *strings.Builder) {
	var buf strings.Builder
	next := 0
	read := func(prompt string) (string, error) {
		if next >= len(inputs) {
			return "", nil
		}
		v := inputs[next]
		next++
		return v, nil
	}
	mock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			buf.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(&buf, format, a...)
		},
		ReadInputFunc:    read,
		ReadPasswordFunc: read,
	}
	return mock, &buf
}

func testObserver(online bool) *connectivity.Observer {
	pinger := &connectivity.PingerMock{
		PingFunc: func(ctx context.Context) error {
			if online {
				return nil
			}
			return errors.New("connection refused")
		},
	}
	return connectivity.NewObserver(pinger, time.Minute, testLogger())
}

func testSession() *storage.Session {
	return &storage.Session{
		Email:        "angler@example.com",
		UserID:       "user-1",
		Name:         "Angler",
		Subscription: "free",
		AccessToken:  "token-123",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}
}

func authStoreWithSession(session *storage.Session) *storage.AuthStorageMock {
	return &storage.AuthStorageMock{
		GetSessionFunc: func(ctx context.Context) (*storage.Session, error) {
			if session == nil {
				return nil, storage.ErrSessionNotFound
			}
			return session, nil
		},
	}
}
