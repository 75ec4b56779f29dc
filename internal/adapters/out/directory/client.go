// Package directory provides the HTTP client the assignment coordinator uses
// to reach the technician directory service. The client implements the
// ports.TechnicianDirectory gateway over the directory's REST API.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"
	"fieldservice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultTimeout bounds every directory call so a slow directory cannot
// stall assignment orchestration.
const DefaultTimeout = 3 * time.Second

// Client is an HTTP implementation of the ports.TechnicianDirectory gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a directory client for the given base URL, for example
// "http://localhost:8081".
func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, DefaultTimeout)
}

// NewClientWithTimeout creates a directory client with a custom per-call
// timeout. A non-positive timeout falls back to DefaultTimeout.
func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// technicianResponse mirrors the directory's technician representation.
type technicianResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone"`
	Status              string          `json:"status"`
	CurrentLocation     string          `json:"current_location"`
	Skills              []string        `json:"skills"`
	ExperienceYears     int             `json:"experience_years"`
	HourlyRate          decimal.Decimal `json:"hourly_rate"`
	MaxConcurrentOrders int             `json:"max_concurrent_orders"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	Version             int             `json:"version"`
}

// statusRequest is the body of a status-change call.
type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus asks the directory to move a technician to the given status.
func (c *Client) UpdateStatus(ctx context.Context, id kernel.UUID, status technician.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(statusRequest{Status: status.String()})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/technicians/%s/status", c.baseURL, id.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer drain(resp)

	return checkStatus(resp, "technician", id.String())
}

// GetName fetches a technician's display name.
func (c *Client) GetName(ctx context.Context, id kernel.UUID) (string, error) {
	url := fmt.Sprintf("%s/api/technicians/%s", c.baseURL, id.String())
	technicianResp, err := c.getTechnician(ctx, url, id.String())
	if err != nil {
		return "", err
	}

	return technicianResp.Name, nil
}

// GetAvailable fetches the current pool of Available technicians as domain
// aggregates.
func (c *Client) GetAvailable(ctx context.Context) ([]*technician.Technician, error) {
	url := c.baseURL + "/api/technicians/available"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer drain(resp)

	if err = checkStatus(resp, "technicians", "available"); err != nil {
		return nil, err
	}

	var wire []technicianResponse
	if err = json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, err
	}

	technicians := make([]*technician.Technician, 0, len(wire))
	for _, item := range wire {
		aggregate, restoreErr := toDomain(item)
		if restoreErr != nil {
			return nil, restoreErr
		}
		technicians = append(technicians, aggregate)
	}

	return technicians, nil
}

func (c *Client) getTechnician(ctx context.Context, url, id string) (technicianResponse, error) {
	var wire technicianResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return wire, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wire, err
	}
	defer drain(resp)

	if err = checkStatus(resp, "technician", id); err != nil {
		return wire, err
	}

	if err = json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return wire, err
	}

	return wire, nil
}

// toDomain rebuilds a technician aggregate from its wire representation.
func toDomain(wire technicianResponse) (*technician.Technician, error) {
	id, err := kernel.UUIDFromString(wire.ID)
	if err != nil {
		return nil, err
	}

	status, err := technician.StatusFromString(wire.Status)
	if err != nil {
		return nil, err
	}

	return technician.RestoreTechnician(
		id,
		wire.Name,
		wire.Email,
		wire.Phone,
		status,
		wire.CurrentLocation,
		wire.Skills,
		wire.ExperienceYears,
		wire.HourlyRate,
		wire.MaxConcurrentOrders,
		wire.CreatedAt,
		wire.UpdatedAt,
		wire.Version,
	)
}

// checkStatus maps HTTP status codes onto the error taxonomy the callers
// already handle.
func checkStatus(resp *http.Response, paramName, id string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError(paramName, id)
	default:
		return fmt.Errorf("directory returned status %d", resp.StatusCode)
	}
}

// drain discards the rest of the body so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
