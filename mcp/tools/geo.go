// mcp/tools/geo.go
package tools

import "context"

// SearchPlacesDefinition describes the place search tool.
func SearchPlacesDefinition() Definition {
	return Definition{
		Name: SearchPlacesName,
		Description: "Search for Twitter places by name. Returns place names, types, " +
			"and full location details for use with geolocated tweets.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Place name to search",
				},
			},
			"required": []string{"query"},
		},
	}
}

func searchPlaces(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	places, err := client.SearchPlaces(ctx, stringArg(args, "query"))
	if err != nil {
		return nil, err
	}
	return newListing(places), nil
}
