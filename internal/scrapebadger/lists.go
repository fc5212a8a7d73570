// internal/scrapebadger/lists.go
package scrapebadger

import (
	"context"
	"net/url"
)

// ListDetail fetches a single list.
func (c *Client) ListDetail(ctx context.Context, listID string) (*List, error) {
	var list List
	if err := c.getJSON(ctx, "/v1/twitter/lists/"+url.PathEscape(listID), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// SearchLists returns one page of lists matching the query. The list search
// endpoint is not cursor-paginated; callers trim to their own bound.
func (c *Client) SearchLists(ctx context.Context, query string) ([]List, error) {
	q := url.Values{"q": {query}}
	var resp listResponse[List]
	if err := c.getJSON(ctx, "/v1/twitter/lists/search", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListTweets returns up to maxResults recent tweets from the list's members.
func (c *Client) ListTweets(ctx context.Context, listID string, maxResults int) ([]Tweet, error) {
	path := "/v1/twitter/lists/" + url.PathEscape(listID) + "/tweets"
	return collectPages[Tweet](ctx, c, path, nil, maxResults)
}
