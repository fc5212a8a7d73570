// mcp/tools/tweets.go
package tools

import "context"

// TweetDefinition describes the single-tweet lookup tool.
func TweetDefinition() Definition {
	return Definition{
		Name: TweetName,
		Description: "Get a single tweet by ID. Returns tweet text, author, metrics " +
			"(likes, retweets, replies), media, polls, and quoted tweets.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"tweet_id": map[string]any{
					"type":        "string",
					"description": "Tweet ID",
				},
			},
			"required": []string{"tweet_id"},
		},
	}
}

func tweet(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	return client.TweetByID(ctx, stringArg(args, "tweet_id"))
}

// UserTweetsDefinition describes the per-user tweet enumeration tool.
func UserTweetsDefinition() Definition {
	return Definition{
		Name: UserTweetsName,
		Description: "Get recent tweets from a Twitter/X user. Returns tweets with " +
			"text, metrics, media, and engagement data.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"username": map[string]any{
					"type":        "string",
					"description": "Twitter username (without @)",
				},
				"max_results": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"maximum":     100,
					"default":     20,
					"description": "Max results (1-100)",
				},
			},
			"required": []string{"username"},
		},
	}
}

func userTweets(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	tweets, err := client.UserTweets(ctx, stringArg(args, "username"), intArg(args, "max_results", 20))
	if err != nil {
		return nil, err
	}
	return newListing(tweets), nil
}

// SearchTweetsDefinition describes the tweet search tool.
func SearchTweetsDefinition() Definition {
	return Definition{
		Name: SearchTweetsName,
		Description: "Search for tweets by query. Returns matching tweets with text, " +
			"authors, metrics, and media. Supports advanced Twitter search operators.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Search query string",
				},
				"max_results": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"maximum":     100,
					"default":     20,
					"description": "Max results (1-100)",
				},
			},
			"required": []string{"query"},
		},
	}
}

func searchTweets(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	tweets, err := client.SearchTweets(ctx, stringArg(args, "query"), intArg(args, "max_results", 20))
	if err != nil {
		return nil, err
	}
	return newListing(tweets), nil
}
