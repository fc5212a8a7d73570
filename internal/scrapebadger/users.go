// internal/scrapebadger/users.go
package scrapebadger

import (
	"context"
	"net/url"
)

// UserByUsername fetches a user's profile.
func (c *Client) UserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/v1/twitter/users/"+url.PathEscape(username), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserAbout fetches a user's extended "About" information.
func (c *Client) UserAbout(ctx context.Context, username string) (*UserAbout, error) {
	var about UserAbout
	if err := c.getJSON(ctx, "/v1/twitter/users/"+url.PathEscape(username)+"/about", nil, &about); err != nil {
		return nil, err
	}
	return &about, nil
}

// SearchUsers returns up to maxResults users matching the query.
func (c *Client) SearchUsers(ctx context.Context, query string, maxResults int) ([]User, error) {
	q := url.Values{"q": {query}}
	return collectPages[User](ctx, c, "/v1/twitter/users/search", q, maxResults)
}

// Followers returns up to maxResults followers of the user.
func (c *Client) Followers(ctx context.Context, username string, maxResults int) ([]User, error) {
	path := "/v1/twitter/users/" + url.PathEscape(username) + "/followers"
	return collectPages[User](ctx, c, path, nil, maxResults)
}

// Following returns up to maxResults accounts the user follows.
func (c *Client) Following(ctx context.Context, username string, maxResults int) ([]User, error) {
	path := "/v1/twitter/users/" + url.PathEscape(username) + "/following"
	return collectPages[User](ctx, c, path, nil, maxResults)
}
