package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rentmate/pkg/logger"
)

const geocodeEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleGeocoder resolves street addresses to coordinates through the Google
// Maps Geocoding API, biased to Taiwan.
type GoogleGeocoder struct {
	apiKey     string
	httpClient *http.Client
}

func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	ErrorMessage string `json:"error_message"`
}

func (g *GoogleGeocoder) Lookup(ctx context.Context, address string) (float64, float64, error) {
	// Prefix with the country name so same-named streets elsewhere don't win.
	fullAddress := address
	if !strings.Contains(address, "台灣") {
		fullAddress = "台灣" + address
	}

	params := url.Values{}
	params.Set("address", fullAddress)
	params.Set("key", g.apiKey)
	params.Set("language", "zh-TW")
	params.Set("region", "tw")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, geocodeEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	var result geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, 0, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if result.Status != "OK" || len(result.Results) == 0 {
		if result.ErrorMessage != "" {
			logger.Warn("Geocoding rejected address %q: %s (%s)", fullAddress, result.Status, result.ErrorMessage)
		}
		return 0, 0, fmt.Errorf("no geocoding result for address (status %s)", result.Status)
	}

	location := result.Results[0].Geometry.Location
	return location.Lat, location.Lng, nil
}
