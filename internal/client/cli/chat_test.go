package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/paclead/internal/client/chat"
	"github.com/iudanet/paclead/pkg/api"
)

func echoCatalog() *CatalogMock {
	return &CatalogMock{
		SendMessageFunc: func(ctx context.Context, token string, req api.WebhookRequest) (*api.WebhookResponse, error) {
			return &api.WebhookResponse{Response: "eco: " + req.Message}, nil
		},
	}
}

func TestCli_runChat_SingleMessage(t *testing.T) {
	ctx := context.Background()
	sio := newScriptedIO()
	catalog := echoCatalog()
	c := newTestCli(sio, authenticatedService("tok"), catalog)

	require.NoError(t, c.runChat(ctx, "Oi"))

	require.Len(t, catalog.SendMessageCalls(), 1)
	assert.Equal(t, "tok", catalog.SendMessageCalls()[0].Token)
	assert.Contains(t, sio.Output(), "IA: eco: Oi")
	assert.NotContains(t, sio.Output(), chat.Greeting)
}

func TestCli_runChat_Interactive(t *testing.T) {
	ctx := context.Background()

	t.Run("exit command", func(t *testing.T) {
		sio := newScriptedIO("Oi", "  ", "Quanto custa?", "/sair", "ignored")
		catalog := echoCatalog()
		c := newTestCli(sio, authenticatedService("tok"), catalog)

		require.NoError(t, c.runChat(ctx, ""))

		require.Len(t, catalog.SendMessageCalls(), 2)
		assert.Equal(t, "Quanto custa?", catalog.SendMessageCalls()[1].Req.Message)

		out := sio.Output()
		assert.Contains(t, out, chat.Greeting)
		assert.Contains(t, out, "IA: eco: Oi")
		assert.Contains(t, out, "IA: eco: Quanto custa?")
		assert.Len(t, sio.ReadInputCalls(), 4)
	})

	t.Run("eof ends session", func(t *testing.T) {
		sio := newScriptedIO("Oi")
		catalog := echoCatalog()
		c := newTestCli(sio, authenticatedService("tok"), catalog)

		require.NoError(t, c.runChat(ctx, ""))
		assert.Len(t, catalog.SendMessageCalls(), 1)
	})

	t.Run("connection error is shown in transcript", func(t *testing.T) {
		sio := newScriptedIO("Oi", "/sair")
		catalog := &CatalogMock{
			SendMessageFunc: func(ctx context.Context, token string, req api.WebhookRequest) (*api.WebhookResponse, error) {
				return nil, errors.New("connection refused")
			},
		}
		c := newTestCli(sio, authenticatedService("tok"), catalog)

		require.NoError(t, c.runChat(ctx, ""))
		assert.Contains(t, sio.Output(), chat.MsgNetworkError)
	})
}

func TestCli_runChat_RequiresAuth(t *testing.T) {
	catalog := echoCatalog()
	c := newTestCli(newScriptedIO("Oi"), anonymousService(), catalog)

	err := c.runChat(context.Background(), "Oi")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, catalog.SendMessageCalls())
}
