package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fieldservice/internal/core/events"

	"go.uber.org/zap"
)

// WebhookSink delivers events as JSON POSTs to an HTTP endpoint.
type WebhookSink struct {
	url        string
	httpClient *http.Client
}

// NewWebhookSink creates a sink posting events to the given URL.
func NewWebhookSink(url string) *WebhookSink {
	return &WebhookSink{
		url:        url,
		httpClient: &http.Client{Timeout: 3 * time.Second},
	}
}

// Deliver posts the event. Any non-2xx response is an error.
func (s *WebhookSink) Deliver(ctx context.Context, event events.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}

// LogSink writes events to the service log. Used when no webhook endpoint is
// configured, so change events remain observable in development setups.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink logging each event at info level.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Deliver logs the event. Never fails.
func (s *LogSink) Deliver(_ context.Context, event events.Event) error {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("work_order_id", event.WorkOrderID),
		zap.Time("timestamp", event.Timestamp),
	}
	if event.TechnicianID != nil {
		fields = append(fields, zap.String("technician_id", *event.TechnicianID))
	}

	s.logger.Info("change event", fields...)
	return nil
}
