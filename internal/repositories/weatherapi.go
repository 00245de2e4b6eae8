package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"weather-finder/internal/models"
	"weather-finder/pkg/observe"
)

const (
	WeatherAPIBaseURL = "https://api.weatherapi.com"

	forecastPath = "/v1/forecast.json"
	searchPath   = "/v1/search.json"

	// MinSuggestionQueryLength is the shortest query (in characters) that is
	// sent to the search endpoint.
	MinSuggestionQueryLength = 2

	opForecast    = "fetch forecast"
	opSuggestions = "fetch suggestions"
)

// WeatherAPIRepository talks to weatherapi.com. It holds no mutable state and
// is safe for concurrent use.
type WeatherAPIRepository struct {
	BaseURL        string
	APIKey         string
	minQueryLength int
	httpClient     HTTPClient
	l              *observe.Logger
}

type Option func(*WeatherAPIRepository)

// WithMinSuggestionQueryLength overrides MinSuggestionQueryLength. Values
// below 1 are ignored.
func WithMinSuggestionQueryLength(n int) Option {
	return func(w *WeatherAPIRepository) {
		if n >= 1 {
			w.minQueryLength = n
		}
	}
}

func NewWeatherAPIRepository(baseURL, apiKey string, l *observe.Logger, httpClient HTTPClient, opts ...Option) (*WeatherAPIRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = WeatherAPIBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if l == nil {
		l = observe.NewNopLogger()
	}

	w := &WeatherAPIRepository{
		BaseURL:        strings.TrimRight(baseURL, "/"),
		APIKey:         apiKey,
		minQueryLength: MinSuggestionQueryLength,
		httpClient:     httpClient,
		l:              l,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

func (w *WeatherAPIRepository) Name() string {
	return "weatherapi"
}

// FetchForecast returns current conditions and a 7-day forecast for a free
// text location query. The query is percent-encoded; an empty query is sent
// as is and rejected by the provider.
func (w *WeatherAPIRepository) FetchForecast(ctx context.Context, query string) (models.WeatherReport, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("days", strconv.Itoa(models.ForecastDays))
	params.Set("aqi", "no")
	params.Set("alerts", "no")

	body, err := w.get(ctx, opForecast, forecastPath, params)
	if err != nil {
		return models.WeatherReport{}, err
	}

	var response wireForecastResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.WeatherReport{}, &DecodeError{Op: opForecast, Reason: "failed to parse JSON response", Err: err}
	}

	report, err := response.toWeatherReport()
	if err != nil {
		return models.WeatherReport{}, &DecodeError{Op: opForecast, Reason: "unexpected response shape", Err: err}
	}

	w.l.Debug("parsed weatherapi forecast", map[string]any{
		"params": report.RequestParams(),
	})

	return report, nil
}

// FetchSuggestions returns the provider-ranked matches for partialQuery.
// Queries shorter than the minimum length, or that are not valid UTF-8 and so
// cannot be encoded, yield an empty result without any request.
func (w *WeatherAPIRepository) FetchSuggestions(ctx context.Context, partialQuery string) ([]models.CitySuggestion, error) {
	if !utf8.ValidString(partialQuery) {
		w.l.Warning("skipping suggestions for query that cannot be encoded", map[string]any{
			"bytes": len(partialQuery),
		})
		return []models.CitySuggestion{}, nil
	}
	if utf8.RuneCountInString(partialQuery) < w.minQueryLength {
		return []models.CitySuggestion{}, nil
	}

	params := url.Values{}
	params.Set("q", partialQuery)

	body, err := w.get(ctx, opSuggestions, searchPath, params)
	if err != nil {
		return nil, err
	}

	var response []wireSuggestion
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &DecodeError{Op: opSuggestions, Reason: "failed to parse JSON response", Err: err}
	}

	suggestions, err := toCitySuggestions(response)
	if err != nil {
		return nil, &DecodeError{Op: opSuggestions, Reason: "unexpected response shape", Err: err}
	}

	w.l.Debug("parsed weatherapi suggestions", map[string]any{
		"query": partialQuery,
		"count": len(suggestions),
	})

	return suggestions, nil
}

// get performs one GET and returns the body of a 2xx response. The API key is
// added here and kept out of logs and errors.
func (w *WeatherAPIRepository) get(ctx context.Context, op, path string, params url.Values) ([]byte, error) {
	w.l.Info("making weatherapi API request", map[string]any{
		"op":    op,
		"path":  path,
		"query": params.Get("q"),
	})

	params.Set("key", w.APIKey)
	endpoint := w.BaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: fmt.Errorf("failed to create request: %w", w.redact(err))}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: w.redact(err)}
	}
	defer resp.Body.Close()

	w.l.Info("received weatherapi API response", map[string]any{
		"op":         op,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, providerError(op, resp, body)
	}

	return body, nil
}

// providerError prefers the provider's {"error":{"code","message"}} payload
// and falls back to the HTTP status text.
func providerError(op string, resp *http.Response, body []byte) *ProviderError {
	pe := &ProviderError{Op: op, StatusCode: resp.StatusCode}

	var payload wireProviderError
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != nil && payload.Error.Message != "" {
		pe.Code = payload.Error.Code
		pe.Message = payload.Error.Message
		return pe
	}

	pe.Message = http.StatusText(resp.StatusCode)
	if pe.Message == "" {
		pe.Message = resp.Status
	}
	return pe
}

// redact strips the API key from URLs embedded in transport errors.
func (w *WeatherAPIRepository) redact(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = strings.ReplaceAll(ue.URL, url.QueryEscape(w.APIKey), "REDACTED")
	}
	return err
}
