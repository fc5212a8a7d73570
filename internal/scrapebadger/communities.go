// internal/scrapebadger/communities.go
package scrapebadger

import (
	"context"
	"net/url"
)

// CommunityDetail fetches a single community.
func (c *Client) CommunityDetail(ctx context.Context, communityID string) (*Community, error) {
	var community Community
	if err := c.getJSON(ctx, "/v1/twitter/communities/"+url.PathEscape(communityID), nil, &community); err != nil {
		return nil, err
	}
	return &community, nil
}

// SearchCommunities returns the communities matching the query.
func (c *Client) SearchCommunities(ctx context.Context, query string) ([]Community, error) {
	q := url.Values{"q": {query}}
	var resp listResponse[Community]
	if err := c.getJSON(ctx, "/v1/twitter/communities/search", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
