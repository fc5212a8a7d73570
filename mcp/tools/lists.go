// mcp/tools/lists.go
package tools

import "context"

// ListDetailDefinition describes the list detail tool.
func ListDetailDefinition() Definition {
	return Definition{
		Name: ListDetailName,
		Description: "Get details about a Twitter list including name, description, " +
			"member count, subscriber count, and owner information.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"list_id": map[string]any{
					"type":        "string",
					"description": "Twitter list ID",
				},
			},
			"required": []string{"list_id"},
		},
	}
}

func listDetail(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	return client.ListDetail(ctx, stringArg(args, "list_id"))
}

// SearchListsDefinition describes the list search tool.
func SearchListsDefinition() Definition {
	return Definition{
		Name: SearchListsName,
		Description: "Search for Twitter lists by query. Returns matching lists " +
			"with names, descriptions, and member counts.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Search query for lists",
				},
				"max_results": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"maximum":     50,
					"default":     20,
					"description": "Max results (1-50)",
				},
			},
			"required": []string{"query"},
		},
	}
}

// searchLists trims after the fact: the list search endpoint returns a fixed
// page rather than a cursor sequence.
func searchLists(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	lists, err := client.SearchLists(ctx, stringArg(args, "query"))
	if err != nil {
		return nil, err
	}
	if max := intArg(args, "max_results", 20); len(lists) > max {
		lists = lists[:max]
	}
	return newListing(lists), nil
}

// ListTweetsDefinition describes the list tweet enumeration tool.
func ListTweetsDefinition() Definition {
	return Definition{
		Name: ListTweetsName,
		Description: "Get recent tweets from a Twitter list. Returns tweets from " +
			"all list members with text, metrics, and media.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"list_id": map[string]any{
					"type":        "string",
					"description": "Twitter list ID",
				},
				"max_results": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"maximum":     100,
					"default":     20,
					"description": "Max results (1-100)",
				},
			},
			"required": []string{"list_id"},
		},
	}
}

func listTweets(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	tweets, err := client.ListTweets(ctx, stringArg(args, "list_id"), intArg(args, "max_results", 20))
	if err != nil {
		return nil, err
	}
	return newListing(tweets), nil
}
