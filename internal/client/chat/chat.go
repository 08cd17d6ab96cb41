// Package chat тестовый чат с ИИ продаж.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	clientapi "github.com/iudanet/paclead/internal/client/api"
	"github.com/iudanet/paclead/pkg/api"
)

//go:generate moq -out sender_mock.go . Sender

// Тексты сообщений ИИ
const (
	Greeting        = "Olá! Sou sua IA de vendas. Como posso ajudá-lo hoje?"
	MsgServerError  = "Desculpe, ocorreu um erro. Tente novamente."
	MsgNetworkError = "Erro de conexão. Verifique sua internet e tente novamente."
)

var (
	// ErrEmptyMessage сообщение пустое или из одних пробелов
	ErrEmptyMessage = errors.New("empty message")
	// ErrBusy предыдущее сообщение еще отправляется
	ErrBusy = errors.New("message already in flight")
)

// Sender отправляет сообщение в webhook прокси
type Sender interface {
	SendMessage(ctx context.Context, token string, req api.WebhookRequest) (*api.WebhookResponse, error)
}

// TokenSource источник bearer токена (auth.Service)
type TokenSource interface {
	Token() string
}

// Message сообщение переписки
type Message struct {
	Timestamp time.Time
	ID        string
	Text      string
	IsUser    bool
}

// Transcript переписка: только добавление, порядок вставки сохраняется
type Transcript struct {
	now      func() time.Time
	messages []Message
	mu       sync.RWMutex
}

// NewTranscript создает переписку с приветствием ИИ
func NewTranscript() *Transcript {
	t := &Transcript{now: time.Now}
	t.Append(Greeting, false)
	return t
}

// Append добавляет сообщение и возвращает его
func (t *Transcript) Append(text string, isUser bool) Message {
	msg := Message{
		ID:        uuid.NewString(),
		Text:      text,
		IsUser:    isUser,
		Timestamp: t.now(),
	}

	t.mu.Lock()
	t.messages = append(t.messages, msg)
	t.mu.Unlock()

	return msg
}

// Messages возвращает копию переписки
func (t *Transcript) Messages() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len количество сообщений
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// Tester тестовый чат: отправляет сообщения и ведет переписку
type Tester struct {
	sender     Sender
	tokens     TokenSource
	logger     *slog.Logger
	transcript *Transcript
	busy       atomic.Bool
}

// NewTester создает тестовый чат
func NewTester(sender Sender, tokens TokenSource, logger *slog.Logger) *Tester {
	return &Tester{
		sender:     sender,
		tokens:     tokens,
		logger:     logger,
		transcript: NewTranscript(),
	}
}

// Transcript возвращает переписку
func (t *Tester) Transcript() *Transcript {
	return t.transcript
}

// Send отправляет сообщение и возвращает ответ ИИ, добавленный в переписку.
// Ошибка сервера или сети не возвращается: в переписку добавляется
// сообщение об ошибке.
func (t *Tester) Send(ctx context.Context, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}
	if !t.busy.CompareAndSwap(false, true) {
		return Message{}, ErrBusy
	}
	defer t.busy.Store(false)

	t.transcript.Append(text, true)

	resp, err := t.sender.SendMessage(ctx, t.tokens.Token(), api.WebhookRequest{Message: text})
	if err != nil {
		var apiErr *clientapi.Error
		if errors.As(err, &apiErr) {
			t.logger.DebugContext(ctx, "webhook returned error", slog.Int("status", apiErr.StatusCode))
			return t.transcript.Append(MsgServerError, false), nil
		}
		t.logger.DebugContext(ctx, "webhook request failed", slog.Any("error", err))
		return t.transcript.Append(MsgNetworkError, false), nil
	}

	return t.transcript.Append(resp.Response, false), nil
}
