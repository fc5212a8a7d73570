// internal/scrapebadger/geo.go
package scrapebadger

import (
	"context"
	"net/url"
)

// SearchPlaces returns the places matching the query.
func (c *Client) SearchPlaces(ctx context.Context, query string) ([]Place, error) {
	q := url.Values{"q": {query}}
	var resp listResponse[Place]
	if err := c.getJSON(ctx, "/v1/twitter/geo/search", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
