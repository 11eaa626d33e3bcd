package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	mealModel "github.com/matbuddy/go-matbuddy/internal/models/meal"
)

const defaultTimeout = 10 * time.Second

// Client talks to a TheMealDB-style meal search service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a pointer to a Client for the given service base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type searchResponse struct {
	Meals []mealModel.RawMeal `json:"meals"`
}

// Search queries the service by meal name and returns the matches in
// canonical form. A service "no matches" reply (null meals) is a success
// with an empty list; a transport or decode fault is an error, so callers
// can tell the two apart.
func (c *Client) Search(ctx context.Context, term string) ([]mealModel.Meal, error) {
	raws, err := c.fetch(ctx, fmt.Sprintf("%s/search.php?s=%s", c.baseURL, url.QueryEscape(term)))
	if err != nil {
		return nil, err
	}
	return NormalizeAll(raws), nil
}

// Lookup fetches a single meal by its identifier, returning nil when the
// service does not know the id.
func (c *Client) Lookup(ctx context.Context, id string) (*mealModel.Meal, error) {
	raws, err := c.fetch(ctx, fmt.Sprintf("%s/lookup.php?i=%s", c.baseURL, url.QueryEscape(id)))
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, nil
	}
	meal := Normalize(raws[0])
	return &meal, nil
}

func (c *Client) fetch(ctx context.Context, requestURL string) ([]mealModel.RawMeal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("meal service returned status %d", res.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	return body.Meals, nil
}
