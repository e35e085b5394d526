package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// WebhookNotifier posts JSON payloads to a configured endpoint.
type WebhookNotifier struct {
	url  string
	http *resty.Client
}

func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &WebhookNotifier{url: url, http: client}
}

func (n *WebhookNotifier) Notify(ctx context.Context, payload interface{}) error {
	resp, err := n.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("notifier: post %s: %w", n.url, err)
	}
	if resp.IsError() {
		return fmt.Errorf("notifier: post %s: unexpected status %d", n.url, resp.StatusCode())
	}
	return nil
}
