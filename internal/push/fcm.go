package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const DefaultEndpoint = "https://fcm.googleapis.com/fcm/send"

var ErrNotConfigured = errors.New("push provider not configured")

// Provider errors that mean the token is dead and the device record
// should be deactivated, as opposed to transient delivery failures.
var invalidTokenErrors = map[string]bool{
	"NotRegistered":       true,
	"InvalidRegistration": true,
	"MismatchSenderId":    true,
}

// TokenResult is the per-token outcome of a multicast send.
type TokenResult struct {
	Token     string
	OK        bool
	MessageID string
	Error     string
	Invalid   bool
}

// Provider delivers a push message to a set of device tokens. The whole
// batch either reaches the provider or fails with a transport error;
// per-token rejections come back in the results.
type Provider interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]string, ttl time.Duration) ([]TokenResult, error)
}

// FCMProvider talks to the FCM legacy HTTP API.
type FCMProvider struct {
	serverKey string
	endpoint  string
	client    *http.Client
}

func NewFCMProvider(serverKey, endpoint string, timeout time.Duration) *FCMProvider {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &FCMProvider{
		serverKey: serverKey,
		endpoint:  endpoint,
		client:    &http.Client{Timeout: timeout},
	}
}

func (p *FCMProvider) Configured() bool {
	return p.serverKey != ""
}

type fcmRequest struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Notification    fcmNotification   `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
	TimeToLive      int               `json:"time_to_live"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Results []struct {
		MessageID string `json:"message_id"`
		Error     string `json:"error"`
	} `json:"results"`
}

func (p *FCMProvider) Send(ctx context.Context, tokens []string, title, body string, data map[string]string, ttl time.Duration) ([]TokenResult, error) {
	if !p.Configured() {
		return nil, ErrNotConfigured
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(fcmRequest{
		RegistrationIDs: tokens,
		Notification:    fcmNotification{Title: title, Body: body},
		Data:            data,
		TimeToLive:      int(ttl.Seconds()),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+p.serverKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fcm returned status %d", resp.StatusCode)
	}

	var parsed fcmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode fcm response: %w", err)
	}

	// Results come back positionally, one per registration id.
	results := make([]TokenResult, 0, len(tokens))
	for i, token := range tokens {
		tr := TokenResult{Token: token}
		if i < len(parsed.Results) {
			r := parsed.Results[i]
			if r.Error == "" {
				tr.OK = true
				tr.MessageID = r.MessageID
			} else {
				tr.Error = r.Error
				tr.Invalid = invalidTokenErrors[r.Error]
			}
		} else {
			tr.Error = "missing result"
		}
		results = append(results, tr)
	}
	return results, nil
}
