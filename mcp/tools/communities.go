// mcp/tools/communities.go
package tools

import "context"

// CommunityDetailDefinition describes the community detail tool.
func CommunityDetailDefinition() Definition {
	return Definition{
		Name: CommunityDetailName,
		Description: "Get details about a Twitter community including name, description, " +
			"member count, rules, and admin information.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"community_id": map[string]any{
					"type":        "string",
					"description": "Twitter community ID",
				},
			},
			"required": []string{"community_id"},
		},
	}
}

func communityDetail(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	return client.CommunityDetail(ctx, stringArg(args, "community_id"))
}

// SearchCommunitiesDefinition describes the community search tool.
func SearchCommunitiesDefinition() Definition {
	return Definition{
		Name: SearchCommunitiesName,
		Description: "Search for Twitter communities by query. Returns matching " +
			"communities with names, descriptions, and member counts.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Search query for communities",
				},
			},
			"required": []string{"query"},
		},
	}
}

func searchCommunities(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	communities, err := client.SearchCommunities(ctx, stringArg(args, "query"))
	if err != nil {
		return nil, err
	}
	return newListing(communities), nil
}
