// internal/scrapebadger/types.go
package scrapebadger

// User is a Twitter/X user profile.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Bio            string `json:"bio,omitempty"`
	Location       string `json:"location,omitempty"`
	URL            string `json:"url,omitempty"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
	TweetCount     int64  `json:"tweet_count"`
	Verified       bool   `json:"verified"`
	ProfileImage   string `json:"profile_image,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// UserAbout is the extended "About" information for a user.
type UserAbout struct {
	Username        string   `json:"username"`
	AccountLocation string   `json:"account_location,omitempty"`
	UsernameHistory []string `json:"username_history,omitempty"`
	VerifiedSince   string   `json:"verified_since,omitempty"`
	VerifiedType    string   `json:"verified_type,omitempty"`
	JoinedAt        string   `json:"joined_at,omitempty"`
}

// Tweet is a single tweet with engagement metrics.
type Tweet struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	AuthorID     string   `json:"author_id,omitempty"`
	Author       *User    `json:"author,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
	LikeCount    int64    `json:"like_count"`
	RetweetCount int64    `json:"retweet_count"`
	ReplyCount   int64    `json:"reply_count"`
	ViewCount    int64    `json:"view_count,omitempty"`
	MediaURLs    []string `json:"media_urls,omitempty"`
	QuotedTweet  *Tweet   `json:"quoted_tweet,omitempty"`
	Language     string   `json:"language,omitempty"`
}

// Trend is a single trending topic.
type Trend struct {
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	TweetCount int64  `json:"tweet_count,omitempty"`
	URL        string `json:"url,omitempty"`
}

// PlaceTrends carries the trends for a specific WOEID location.
type PlaceTrends struct {
	WOEID     int64   `json:"woeid"`
	PlaceName string  `json:"place_name,omitempty"`
	AsOf      string  `json:"as_of,omitempty"`
	Trends    []Trend `json:"trends"`
}

// Place is a Twitter geo place.
type Place struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name,omitempty"`
	PlaceType   string `json:"place_type,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Country     string `json:"country,omitempty"`
}

// List is a Twitter list.
type List struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	MemberCount     int64  `json:"member_count"`
	SubscriberCount int64  `json:"subscriber_count"`
	Owner           *User  `json:"owner,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// Community is a Twitter community.
type Community struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	MemberCount int64    `json:"member_count"`
	Rules       []string `json:"rules,omitempty"`
	Admins      []User   `json:"admins,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// TrendCategory filters trend listings. The zero value means no filter.
type TrendCategory string

const (
	TrendCategoryNone          TrendCategory = ""
	TrendCategoryNews          TrendCategory = "news"
	TrendCategorySports        TrendCategory = "sports"
	TrendCategoryEntertainment TrendCategory = "entertainment"
)
