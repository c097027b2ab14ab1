// Package places provides a client for the Google Places "place details" API.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DetailFields is the field mask requested for every lookup.
var DetailFields = []string{
	"name",
	"formatted_address",
	"formatted_phone_number",
	"website",
	"rating",
	"user_ratings_total",
	"opening_hours",
	"current_opening_hours",
}

// maxResponseBytes caps the size of a details response.
const maxResponseBytes = 4 << 20

// ErrMissingResult is returned when an OK response carries no result object.
var ErrMissingResult = errors.New("places response has no result")

// ErrResponseTooLarge is returned when a response exceeds maxResponseBytes.
var ErrResponseTooLarge = errors.New("places response too large")

// Client is the place details client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxBody    int64
}

// NewClient creates a new places client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxBody: maxResponseBytes,
	}
}

// OpeningHours is the opening_hours / current_opening_hours object.
type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// PlaceDetails holds the requested attributes. Pointer fields are nil when
// the provider omitted them.
type PlaceDetails struct {
	Name                 string        `json:"name,omitempty"`
	FormattedAddress     string        `json:"formatted_address,omitempty"`
	FormattedPhoneNumber string        `json:"formatted_phone_number,omitempty"`
	Website              string        `json:"website,omitempty"`
	Rating               *float64      `json:"rating,omitempty"`
	UserRatingsTotal     *int          `json:"user_ratings_total,omitempty"`
	OpeningHours         *OpeningHours `json:"opening_hours,omitempty"`
	CurrentOpeningHours  *OpeningHours `json:"current_opening_hours,omitempty"`
}

// DetailsResponse is the envelope returned by the details endpoint.
type DetailsResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Result       *PlaceDetails `json:"result,omitempty"`
}

// StatusError reports a non-OK status in the response envelope.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("places API status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("places API status %s", e.Status)
}

// GetDetails fetches the details of one place.
func (c *Client) GetDetails(ctx context.Context, placeID string) (*PlaceDetails, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", strings.Join(DetailFields, ","))
	q.Set("key", c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/maps/api/place/details/json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(respBody)) > c.maxBody {
		return nil, ErrResponseTooLarge
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("places API error [%d]: %s", resp.StatusCode, string(respBody))
	}

	var result DetailsResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if result.Status != "OK" {
		return nil, &StatusError{Status: result.Status, Message: result.ErrorMessage}
	}
	if result.Result == nil {
		return nil, ErrMissingResult
	}
	return result.Result, nil
}
