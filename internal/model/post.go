package model

import "time"

// Post is one unit of text about a product with its engagement metadata.
// Text is never empty. Posts are not mutated after an adapter returns them.
type Post struct {
	Text            string     `json:"text"`
	Source          string     `json:"source"`
	EngagementScore float64    `json:"engagement_score"`
	Rating          int        `json:"rating"`
	Verified        bool       `json:"verified"`
	CreatedAt       time.Time  `json:"created_at"`
	Extra           *PostExtra `json:"extra,omitempty"`
}

// PostExtra holds the source specific fields of a Post. Exactly one member is set.
type PostExtra struct {
	Reddit  *RedditExtra  `json:"reddit,omitempty"`
	Twitter *TwitterExtra `json:"twitter,omitempty"`
	YouTube *YouTubeExtra `json:"youtube,omitempty"`
	News    *NewsExtra    `json:"news,omitempty"`
	Review  *ReviewExtra  `json:"review,omitempty"`
}

type RedditExtra struct {
	Subreddit   string `json:"subreddit"`
	Upvotes     int    `json:"upvotes"`
	NumComments int    `json:"num_comments"`
	URL         string `json:"url,omitempty"`
	Author      string `json:"author,omitempty"`
}

type TwitterExtra struct {
	TweetID         string `json:"tweet_id,omitempty"`
	Likes           int    `json:"likes"`
	Retweets        int    `json:"retweets"`
	Replies         int    `json:"replies"`
	AuthorFollowers int    `json:"author_followers"`
}

type YouTubeExtra struct {
	VideoID  string `json:"video_id,omitempty"`
	Title    string `json:"title"`
	Channel  string `json:"channel,omitempty"`
	Views    int64  `json:"views"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
}

type NewsExtra struct {
	Title     string `json:"title"`
	URL       string `json:"url,omitempty"`
	Publisher string `json:"publisher,omitempty"`
}

// ReviewExtra is shared by the e-commerce sources.
type ReviewExtra struct {
	Title        string `json:"title,omitempty"`
	HelpfulVotes int    `json:"helpful_votes"`
	ProductTitle string `json:"product_title,omitempty"`
	URL          string `json:"url,omitempty"`
}

// InterestPoint is one sample of a search-interest index (0..100).
type InterestPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// SearchInterest is the search-trend signal for a product.
type SearchInterest struct {
	Points   []InterestPoint `json:"points"`
	ByRegion map[string]int  `json:"interest_by_region,omitempty"`
}
