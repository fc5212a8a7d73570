// internal/scrapebadger/tweets.go
package scrapebadger

import (
	"context"
	"net/url"
)

// TweetByID fetches a single tweet.
func (c *Client) TweetByID(ctx context.Context, tweetID string) (*Tweet, error) {
	var tweet Tweet
	if err := c.getJSON(ctx, "/v1/twitter/tweets/"+url.PathEscape(tweetID), nil, &tweet); err != nil {
		return nil, err
	}
	return &tweet, nil
}

// UserTweets returns up to maxResults recent tweets from the user.
func (c *Client) UserTweets(ctx context.Context, username string, maxResults int) ([]Tweet, error) {
	path := "/v1/twitter/users/" + url.PathEscape(username) + "/tweets"
	return collectPages[Tweet](ctx, c, path, nil, maxResults)
}

// SearchTweets returns up to maxResults tweets matching the query.
func (c *Client) SearchTweets(ctx context.Context, query string, maxResults int) ([]Tweet, error) {
	q := url.Values{"q": {query}}
	return collectPages[Tweet](ctx, c, "/v1/twitter/tweets/search", q, maxResults)
}
