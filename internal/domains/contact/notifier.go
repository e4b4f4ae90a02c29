package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"showreel-backend/pkg/logger"
)

// Notifier forwards contact-form submissions to a chat webhook. When
// no webhook URL is configured, or delivery fails, the submission is
// written to the log instead. The caller never sees a delivery error.
type Notifier struct {
	webhookURL string
	client     *resty.Client
}

func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     resty.New().SetTimeout(10 * time.Second),
	}
}

// Enabled reports whether a webhook is configured.
func (n *Notifier) Enabled() bool {
	return n.webhookURL != ""
}

// Notify delivers the submission. Errors are logged, never returned.
func (n *Notifier) Notify(ctx context.Context, req SubmitRequest) {
	if !n.Enabled() {
		logger.Info("Contact notification delivery simulated, no webhook configured", map[string]interface{}{
			"name":    req.Name,
			"email":   req.Email,
			"subject": req.Subject,
			"message": req.Message,
		})
		return
	}

	payload := map[string]string{
		"text": formatSubmission(req),
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(n.webhookURL)
	if err != nil || resp.IsError() {
		status := 0
		if resp != nil {
			status = resp.StatusCode()
		}
		logger.Warn("Contact webhook delivery failed, logging submission instead", map[string]interface{}{
			"status":  status,
			"error":   fmt.Sprintf("%v", err),
			"name":    req.Name,
			"email":   req.Email,
			"subject": req.Subject,
			"message": req.Message,
		})
		return
	}

	logger.Info("Contact submission forwarded to webhook", map[string]interface{}{
		"email":   req.Email,
		"subject": req.Subject,
	})
}

func formatSubmission(req SubmitRequest) string {
	return fmt.Sprintf(
		"New contact form submission\nName: %s\nEmail: %s\nSubject: %s\n\n%s",
		req.Name, req.Email, req.Subject, req.Message,
	)
}
