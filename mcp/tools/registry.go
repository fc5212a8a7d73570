// mcp/tools/registry.go
package tools

// toolEntry binds a descriptor to its handler. The registry is a structured
// table rather than a chain of name comparisons, so the catalog and dispatch
// can never drift apart.
type toolEntry struct {
	definition Definition
	handler    Handler
}

// catalog is the fixed, ordered tool registry, grouped by subject. Established
// at startup and never mutated.
var catalog = []toolEntry{
	// User tools
	{UserProfileDefinition(), userProfile},
	{UserAboutDefinition(), userAbout},
	{SearchUsersDefinition(), searchUsers},
	{FollowersDefinition(), followers},
	{FollowingDefinition(), following},
	// Tweet tools
	{TweetDefinition(), tweet},
	{UserTweetsDefinition(), userTweets},
	{SearchTweetsDefinition(), searchTweets},
	// Trend tools
	{TrendsDefinition(), trends},
	{PlaceTrendsDefinition(), placeTrends},
	// Geo tools
	{SearchPlacesDefinition(), searchPlaces},
	// List tools
	{ListDetailDefinition(), listDetail},
	{SearchListsDefinition(), searchLists},
	{ListTweetsDefinition(), listTweets},
	// Community tools
	{CommunityDetailDefinition(), communityDetail},
	{SearchCommunitiesDefinition(), searchCommunities},
}

// catalogIndex resolves tool names to entries.
var catalogIndex = func() map[string]toolEntry {
	index := make(map[string]toolEntry, len(catalog))
	for _, entry := range catalog {
		index[entry.definition.Name] = entry
	}
	return index
}()

// Definitions returns the full ordered tool catalog. Callable before any
// credential is available.
func Definitions() []Definition {
	defs := make([]Definition, len(catalog))
	for i, entry := range catalog {
		defs[i] = entry.definition
	}
	return defs
}
