package search

import (
	"context"
	"fmt"
	"net/http"

	"SmartCart/app/api/smartcart/internal/config"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

// Client calls the external web-search API used to look up the ingredient
// list of a dish.
type Client struct {
	log        logx.Logger
	baseUrl    string
	apiKey     string
	maxResults int
}

type searchRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResult struct {
	Title string `json:"title"`
	Url   string `json:"url"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

func NewClient(log logx.Logger, c config.SearchConf) *Client {
	maxResults := c.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}
	return &Client{
		log:        log,
		baseUrl:    c.BaseUrl,
		apiKey:     c.APIKey,
		maxResults: maxResults,
	}
}

// SearchIngredients asks the search API which ingredients make up a dish and
// returns the result titles in order. A transport or non-200 failure is
// fatal for the calling request.
func (c *Client) SearchIngredients(ctx context.Context, dish string) ([]string, error) {
	if c == nil || c.baseUrl == "" {
		return nil, fmt.Errorf("search tool not configured")
	}

	req := searchRequest{
		APIKey:     c.apiKey,
		Query:      fmt.Sprintf("list ingredients used to make %s", dish),
		MaxResults: c.maxResults,
	}

	resp, err := httpc.Do(ctx, http.MethodPost, c.baseUrl+"/search", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search api returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := httpc.ParseJsonBody(resp, &payload); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(payload.Results))
	for _, r := range payload.Results {
		if r.Title != "" {
			titles = append(titles, r.Title)
		}
	}
	return titles, nil
}
