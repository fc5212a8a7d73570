// internal/scrapebadger/trends.go
package scrapebadger

import (
	"context"
	"net/url"
	"strconv"
)

// Trends returns the current trending topics, optionally filtered by category.
func (c *Client) Trends(ctx context.Context, category TrendCategory) ([]Trend, error) {
	var q url.Values
	if category != TrendCategoryNone {
		q = url.Values{"category": {string(category)}}
	}
	var resp listResponse[Trend]
	if err := c.getJSON(ctx, "/v1/twitter/trends", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// PlaceTrendsByWOEID returns the trends for a specific location.
func (c *Client) PlaceTrendsByWOEID(ctx context.Context, woeid int64) (*PlaceTrends, error) {
	var trends PlaceTrends
	path := "/v1/twitter/trends/place/" + strconv.FormatInt(woeid, 10)
	if err := c.getJSON(ctx, path, nil, &trends); err != nil {
		return nil, err
	}
	return &trends, nil
}
