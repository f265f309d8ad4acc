package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFCMProviderSend(t *testing.T) {
	var received fcmRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key=secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": 1,
			"failure": 1,
			"results": []map[string]string{
				{"message_id": "mid-1"},
				{"error": "NotRegistered"},
			},
		})
	}))
	defer server.Close()

	provider := NewFCMProvider("secret", server.URL, 2*time.Second)
	results, err := provider.Send(context.Background(),
		[]string{"token-a", "token-b"}, "title", "body",
		map[string]string{"alert_id": "a1"}, time.Hour)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].OK)
	assert.Equal(t, "mid-1", results[0].MessageID)

	assert.False(t, results[1].OK)
	assert.Equal(t, "NotRegistered", results[1].Error)
	assert.True(t, results[1].Invalid, "NotRegistered means the token is dead")

	assert.Equal(t, []string{"token-a", "token-b"}, received.RegistrationIDs)
	assert.Equal(t, 3600, received.TimeToLive)
	assert.Equal(t, "title", received.Notification.Title)
}

func TestFCMProviderTransientErrorIsNotInvalid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]string{{"error": "Unavailable"}},
		})
	}))
	defer server.Close()

	provider := NewFCMProvider("secret", server.URL, time.Second)
	results, err := provider.Send(context.Background(), []string{"t"}, "", "", nil, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Invalid, "transient errors must not deactivate the token")
}

func TestFCMProviderUnconfigured(t *testing.T) {
	provider := NewFCMProvider("", "", time.Second)
	_, err := provider.Send(context.Background(), []string{"t"}, "", "", nil, 0)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestFCMProviderNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := NewFCMProvider("bad-key", server.URL, time.Second)
	_, err := provider.Send(context.Background(), []string{"t"}, "", "", nil, 0)
	assert.Error(t, err)
}
