package providers

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

	"github.com/i474232898/monthly-forecast/internal/forecast"
)

const timelineDateFormat = "2006-01-02"

var (
	// ErrRequestFailed covers transport errors, timeouts and non-2xx statuses.
	ErrRequestFailed = errors.New("weather request failed")
	// ErrBadShape covers responses that arrive but do not match the expected payload.
	ErrBadShape = errors.New("unexpected weather response shape")
)

// VisualCrossingProvider implements the forecast.TimelineProvider interface
// for the Visual Crossing timeline API.
type VisualCrossingProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewVisualCrossingProvider(client *http.Client, apiKey string) *VisualCrossingProvider {
	return &VisualCrossingProvider{
		name:    "visualcrossing",
		apiKey:  apiKey,
		baseURL: "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline",
		client:  client,
	}
}

func (p *VisualCrossingProvider) Name() string {
	return p.name
}

// timelineDay mirrors one entry of the provider's "days" list. Required
// fields are pointers so absence can be told apart from a zero value.
type timelineDay struct {
	Datetime   *string  `json:"datetime"`
	TempMax    *float64 `json:"tempmax"`
	TempMin    *float64 `json:"tempmin"`
	Temp       *float64 `json:"temp"`
	Conditions *string  `json:"conditions"`
	Precip     *float64 `json:"precip"`
}

type timelinePayload struct {
	Days    []timelineDay `json:"days"`
	Message string        `json:"message"`
}

// FetchRange requests the closed interval [r.Start, r.End] for location and
// normalizes the response, preserving provider order. A missing required
// field on any entry fails the whole fetch; a missing precip value defaults
// to zero for that entry.
func (p *VisualCrossingProvider) FetchRange(ctx context.Context, location string, r forecast.DateRange) ([]forecast.DailyRecord, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("visualcrossing api key is not configured")
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("include", "days")
	values.Set("unitGroup", "metric")
	values.Set("contentType", "json")
	values.Set("elements", "datetime,tempmax,tempmin,temp,conditions,precip")

	u := fmt.Sprintf("%s/%s/%s/%s?%s",
		p.baseURL,
		url.PathEscape(location),
		r.Start.Format(timelineDateFormat),
		r.End.Format(timelineDateFormat),
		values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Error bodies are plain text or JSON depending on the failure;
		// keep a short excerpt for the user-visible message.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload timelinePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, err)
	}

	if payload.Days == nil {
		if payload.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrBadShape, payload.Message)
		}
		return nil, fmt.Errorf("%w: response has no days list", ErrBadShape)
	}

	records := make([]forecast.DailyRecord, 0, len(payload.Days))
	for i, day := range payload.Days {
		if day.Datetime == nil || day.TempMax == nil || day.TempMin == nil || day.Temp == nil || day.Conditions == nil {
			return nil, fmt.Errorf("%w: day entry %d is missing a required field", ErrBadShape, i)
		}

		date, err := time.Parse(timelineDateFormat, *day.Datetime)
		if err != nil {
			return nil, fmt.Errorf("%w: day entry %d has invalid date %q", ErrBadShape, i, *day.Datetime)
		}

		rec := forecast.DailyRecord{
			Date:       date,
			TempMaxC:   *day.TempMax,
			TempMinC:   *day.TempMin,
			TempAvgC:   *day.Temp,
			Conditions: *day.Conditions,
		}
		if day.Precip != nil {
			rec.PrecipMM = *day.Precip
		}

		records = append(records, rec)
	}

	return records, nil
}

var _ forecast.TimelineProvider = (*VisualCrossingProvider)(nil)
