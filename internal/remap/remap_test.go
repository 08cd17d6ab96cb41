package remap

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/paclead/internal/backend"
	"github.com/iudanet/paclead/pkg/api"
)

func TestRegisterToBackend(t *testing.T) {
	tests := []struct {
		name   string
		aiTone string
		want   backend.RegisterRequest
	}{
		{
			name:   "default tone",
			aiTone: "",
			want: backend.RegisterRequest{
				Email:    "a@x.com",
				Password: "p",
				FullName: "Ana",
				AITone:   DefaultAITone,
			},
		},
		{
			name:   "configured tone",
			aiTone: "Seja breve",
			want: backend.RegisterRequest{
				Email:    "a@x.com",
				Password: "p",
				FullName: "Ana",
				AITone:   "Seja breve",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RegisterToBackend(api.RegisterRequest{Name: "Ana", Email: "a@x.com", Password: "p"}, tt.aiTone)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RegisterToBackend() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegisterToBackend_WireFormat(t *testing.T) {
	data, err := json.Marshal(RegisterToBackend(api.RegisterRequest{Name: "Ana", Email: "a@x.com", Password: "p"}, ""))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))

	assert.Equal(t, "Ana", body["full_name"])
	assert.Equal(t, "", body["company_name"])
	assert.Equal(t, DefaultAITone, body["ai_tone"])
	assert.NotContains(t, body, "name")
}

func TestRegisterFromBackend(t *testing.T) {
	var resp backend.UserResponse
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"email":"a@x.com","full_name":"Ana"}`), &resp))

	got := RegisterFromBackend(resp)
	want := api.AuthResponse{User: api.User{ID: "1", Email: "a@x.com", Name: "Ana"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RegisterFromBackend() mismatch (-want +got):\n%s", diff)
	}

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":{"id":"1","email":"a@x.com","name":"Ana"}}`, string(data))
}

func TestLoginFromBackend(t *testing.T) {
	req := api.LoginRequest{Email: "a@x.com", Password: "p"}
	resp := backend.LoginResponse{AccessToken: "tok", UserID: "5"}

	got := LoginFromBackend(req, resp)
	want := api.AuthResponse{
		User:  api.User{ID: "5", Email: "a@x.com", Name: ""},
		Token: "tok",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoginFromBackend() mismatch (-want +got):\n%s", diff)
	}
}

func TestVerifyFromBackend(t *testing.T) {
	got := VerifyFromBackend(backend.UserResponse{ID: "1", Email: "a@x.com", FullName: "Ana", AITone: "x"})
	assert.Equal(t, api.VerifyResponse{User: api.User{ID: "1", Email: "a@x.com", Name: "Ana"}}, got)
}

func TestSettings(t *testing.T) {
	assert.Equal(t, api.Settings{AITone: "Be nice"}, SettingsFromBackend(backend.UserResponse{AITone: "Be nice"}))

	data, err := json.Marshal(SettingsToBackend(api.Settings{AITone: "Be nice"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ai_tone":"Be nice"}`, string(data))
}

func TestWebhook(t *testing.T) {
	tests := []struct {
		name string
		req  api.WebhookRequest
		want string
	}{
		{
			name: "without user_id",
			req:  api.WebhookRequest{Message: "Oi"},
			want: `{"mensagem":"Oi"}`,
		},
		{
			name: "with numeric user_id",
			req:  api.WebhookRequest{Message: "Oi", UserID: json.RawMessage(`3`)},
			want: `{"mensagem":"Oi","user_id":3}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(WebhookToBackend(tt.req))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}

	assert.Equal(t, api.WebhookResponse{Response: "Olá"}, WebhookFromBackend(backend.WebhookResponse{Resposta: "Olá"}))
}
