package courierapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"order-policy-service/internal/domain"
)

// StatusError is a non-2xx response from the courier API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("courier api: status %d", e.Code)
	}
	return fmt.Sprintf("courier api: status %d: %s", e.Code, e.Body)
}

// Client reports courier positions to the service over HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a Client. A nil httpClient gets a client with timeout.
func NewClient(baseURL, token string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

type locationRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ReportLocation sends PATCH /courier/{id}/location.
func (c *Client) ReportLocation(ctx context.Context, courierID int64, p domain.Point) error {
	body, err := json.Marshal(locationRequest{Lat: p.Lat, Lon: p.Lon})
	if err != nil {
		return fmt.Errorf("encode location: %w", err)
	}

	url := c.baseURL + "/courier/" + strconv.FormatInt(courierID, 10) + "/location"
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("courier api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
