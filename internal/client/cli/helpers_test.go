package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/iudanet/paclead/internal/client/auth"
	"github.com/iudanet/paclead/internal/client/iocli"
	"github.com/iudanet/paclead/pkg/api"
)

// scriptedIO IOMock с заранее заданным вводом и записью вывода
type scriptedIO struct {
	*iocli.IOMock
	out     strings.Builder
	inputs  []string
	prompts []string
	mu      sync.Mutex
}

func newScriptedIO(inputs ...string) *scriptedIO {
	s := &scriptedIO{inputs: inputs}
	next := func(prompt string) (string, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.prompts = append(s.prompts, prompt)
		if len(s.inputs) == 0 {
			return "", io.EOF
		}
		in := s.inputs[0]
		s.inputs = s.inputs[1:]
		return in, nil
	}
	s.IOMock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			s.mu.Lock()
			defer s.mu.Unlock()
			fmt.Fprintln(&s.out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			s.mu.Lock()
			defer s.mu.Unlock()
			fmt.Fprintf(&s.out, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.out.Write(p)
		},
		ReadInputFunc:    next,
		ReadPasswordFunc: next,
	}
	return s
}

func (s *scriptedIO) Output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

func authenticatedService(token string) *auth.ServiceMock {
	return &auth.ServiceMock{
		InitFunc:            func(ctx context.Context) error { return nil },
		IsAuthenticatedFunc: func() bool { return true },
		TokenFunc:           func() string { return token },
		CurrentUserFunc: func() (api.User, bool) {
			return api.User{ID: "7", Email: "ana@example.com", Name: "Ana"}, true
		},
	}
}

func anonymousService() *auth.ServiceMock {
	return &auth.ServiceMock{
		InitFunc:            func(ctx context.Context) error { return nil },
		IsAuthenticatedFunc: func() bool { return false },
		TokenFunc:           func() string { return "" },
		CurrentUserFunc:     func() (api.User, bool) { return api.User{}, false },
	}
}

func newTestCli(out iocli.IO, svc auth.Service, catalog Catalog) *Cli {
	return New(out, svc, catalog, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
