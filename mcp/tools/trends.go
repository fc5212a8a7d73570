// mcp/tools/trends.go
package tools

import (
	"context"
	"strings"

	"github.com/scrapebadger/scrapebadger-mcp/internal/scrapebadger"
)

// trendCategories maps the caller-facing category strings to client filters.
var trendCategories = map[string]scrapebadger.TrendCategory{
	"news":          scrapebadger.TrendCategoryNews,
	"sports":        scrapebadger.TrendCategorySports,
	"entertainment": scrapebadger.TrendCategoryEntertainment,
}

// TrendsDefinition describes the trend listing tool.
func TrendsDefinition() Definition {
	return Definition{
		Name: TrendsName,
		Description: "Get current trending topics on Twitter/X. Optionally filter by " +
			"category (news, sports, entertainment). Returns trend names and tweet counts.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"category": map[string]any{
					"type":        "string",
					"description": "Trend category: 'news', 'sports', 'entertainment', or omit for all",
				},
			},
		},
	}
}

// trends lists trending topics. An unrecognized category falls through to the
// unfiltered call rather than failing validation.
func trends(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	category := trendCategories[strings.ToLower(stringArg(args, "category"))]
	result, err := client.Trends(ctx, category)
	if err != nil {
		return nil, err
	}
	return newListing(result), nil
}

// PlaceTrendsDefinition describes the location trend lookup tool.
func PlaceTrendsDefinition() Definition {
	return Definition{
		Name: PlaceTrendsName,
		Description: "Get trending topics for a specific location using WOEID. " +
			"Common WOEIDs: US=23424977, UK=23424975, Japan=23424856.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"woeid": map[string]any{
					"type":        "integer",
					"description": "Where On Earth ID (e.g., 23424977 for US, 44418 for London)",
				},
			},
			"required": []string{"woeid"},
		},
	}
}

func placeTrends(ctx context.Context, client DataClient, args map[string]any) (any, error) {
	return client.PlaceTrendsByWOEID(ctx, int64(intArg(args, "woeid", 0)))
}
