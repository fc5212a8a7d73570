// mcp/tools/tools.go
// Package tools holds the ScrapeBadger MCP tool catalog: descriptors, argument
// validation, dispatch, and the uniform success/error envelope every call
// returns.
package tools

import (
	"context"

	"github.com/scrapebadger/scrapebadger-mcp/internal/scrapebadger"
)

// Definition describes the metadata the MCP server exposes for a tool.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// ContentPart represents a piece of data returned from a tool invocation.
type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Handler executes a tool against the data client. Arguments have already been
// validated against the tool's InputSchema when a handler runs.
type Handler func(ctx context.Context, client DataClient, args map[string]any) (any, error)

// ClientProvider yields the shared data client, constructing it on first use.
type ClientProvider func() (DataClient, error)

// DataClient is the delegated retrieval client the dispatcher calls into.
// *scrapebadger.Client satisfies it; tests substitute a fake.
type DataClient interface {
	UserByUsername(ctx context.Context, username string) (*scrapebadger.User, error)
	UserAbout(ctx context.Context, username string) (*scrapebadger.UserAbout, error)
	SearchUsers(ctx context.Context, query string, maxResults int) ([]scrapebadger.User, error)
	Followers(ctx context.Context, username string, maxResults int) ([]scrapebadger.User, error)
	Following(ctx context.Context, username string, maxResults int) ([]scrapebadger.User, error)
	TweetByID(ctx context.Context, tweetID string) (*scrapebadger.Tweet, error)
	UserTweets(ctx context.Context, username string, maxResults int) ([]scrapebadger.Tweet, error)
	SearchTweets(ctx context.Context, query string, maxResults int) ([]scrapebadger.Tweet, error)
	Trends(ctx context.Context, category scrapebadger.TrendCategory) ([]scrapebadger.Trend, error)
	PlaceTrendsByWOEID(ctx context.Context, woeid int64) (*scrapebadger.PlaceTrends, error)
	SearchPlaces(ctx context.Context, query string) ([]scrapebadger.Place, error)
	ListDetail(ctx context.Context, listID string) (*scrapebadger.List, error)
	SearchLists(ctx context.Context, query string) ([]scrapebadger.List, error)
	ListTweets(ctx context.Context, listID string, maxResults int) ([]scrapebadger.Tweet, error)
	CommunityDetail(ctx context.Context, communityID string) (*scrapebadger.Community, error)
	SearchCommunities(ctx context.Context, query string) ([]scrapebadger.Community, error)
}

// Canonical tool names, grouped by subject.
const (
	UserProfileName       = "get_twitter_user_profile"
	UserAboutName         = "get_twitter_user_about"
	SearchUsersName       = "search_twitter_users"
	FollowersName         = "get_twitter_followers"
	FollowingName         = "get_twitter_following"
	TweetName             = "get_twitter_tweet"
	UserTweetsName        = "get_twitter_user_tweets"
	SearchTweetsName      = "search_twitter_tweets"
	TrendsName            = "get_twitter_trends"
	PlaceTrendsName       = "get_twitter_place_trends"
	SearchPlacesName      = "search_twitter_places"
	ListDetailName        = "get_twitter_list_detail"
	SearchListsName       = "search_twitter_lists"
	ListTweetsName        = "get_twitter_list_tweets"
	CommunityDetailName   = "get_twitter_community_detail"
	SearchCommunitiesName = "search_twitter_communities"
)
