// mcp/tools/users.go
package tools

import "context"

// UserProfileDefinition describes the profile lookup tool for discovery by the MCP host.
func UserProfileDefinition() Definition {
	return Definition{
		Name: UserProfileName,
		Description: "Get a Twitter/X user's profile by username. Returns name, bio, " +
			"follower count, following count, verified status, and more.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"username": map[string]any{
					"type":        "string",
					"description": "Twitter username (without @)",
				},
			},
			"required": []string{"username"},
		},
	}
}

func userProfile(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	return client.UserByUsername(ctx, stringArg(args, "username"))
}

// UserAboutDefinition describes the extended-info lookup tool.
func UserAboutDefinition() Definition {
	return Definition{
		Name: UserAboutName,
		Description: "Get extended 'About' information for a Twitter/X user including " +
			"account location, username change history, and verification details.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"username": map[string]any{
					"type":        "string",
					"description": "Twitter username (without @)",
				},
			},
			"required": []string{"username"},
		},
	}
}

func userAbout(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	return client.UserAbout(ctx, stringArg(args, "username"))
}

// SearchUsersDefinition describes the user search tool.
func SearchUsersDefinition() Definition {
	return Definition{
		Name: SearchUsersName,
		Description: "Search for Twitter/X users by query. Returns matching profiles " +
			"with bios, follower counts, and verification status.",
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

func searchUsers(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	users, err := client.SearchUsers(ctx, stringArg(args, "query"), intArg(args, "max_results", 20))
	if err != nil {
		return nil, err
	}
	return newListing(users), nil
}

// FollowersDefinition describes the follower enumeration tool.
func FollowersDefinition() Definition {
	return Definition{
		Name: FollowersName,
		Description: "Get followers of a Twitter/X user. Returns list of follower " +
			"profiles with their bios and follower counts.",
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
					"maximum":     200,
					"default":     50,
					"description": "Max results (1-200)",
				},
			},
			"required": []string{"username"},
		},
	}
}

func followers(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	users, err := client.Followers(ctx, stringArg(args, "username"), intArg(args, "max_results", 50))
	if err != nil {
		return nil, err
	}
	return newListing(users), nil
}

// FollowingDefinition describes the following enumeration tool.
func FollowingDefinition() Definition {
	return Definition{
		Name: FollowingName,
		Description: "Get accounts that a Twitter/X user is following. Returns list " +
			"of following profiles with their bios and follower counts.",
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
					"maximum":     200,
					"default":     50,
					"description": "Max results (1-200)",
				},
			},
			"required": []string{"username"},
		},
	}
}

func following(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	users, err := client.Following(ctx, stringArg(args, "username"), intArg(args, "max_results", 50))
	if err != nil {
		return nil, err
	}
	return newListing(users), nil
}
