package records

import "dumpsift/internal/core/tabular"

// Sentinel choice for nested columns: list-shaped fields (awards, report
// lists) collapse to "[]", object-shaped fields (gildings, media) to
// "null". Source archives disagree; this convention is fixed here
const (
	emptyList   = "[]"
	emptyObject = "null"
)

func commentColumns() tabular.Schema {
	return tabular.Schema{
		{Name: "id", Kind: tabular.Text},
		{Name: "author", Kind: tabular.Text},
		{Name: "author_fullname", Kind: tabular.Text},
		{Name: "author_premium", Kind: tabular.Bool},
		{Name: "author_is_blocked", Kind: tabular.Bool},
		{Name: "body", Kind: tabular.Prose},
		{Name: "created_utc", Kind: tabular.Timestamp},
		{Name: "retrieved_on", Kind: tabular.Timestamp},
		{Name: "subreddit", Kind: tabular.Text},
		{Name: "subreddit_id", Kind: tabular.Text},
		{Name: "subreddit_type", Kind: tabular.Text},
		{Name: "score", Kind: tabular.Numeric},
		{Name: "ups", Kind: tabular.Numeric},
		{Name: "downs", Kind: tabular.Numeric},
		{Name: "total_awards_received", Kind: tabular.Numeric},
		{Name: "gilded", Kind: tabular.Numeric},
		{Name: "distinguished", Kind: tabular.Enum, Default: "none"},
		{Name: "stickied", Kind: tabular.Bool},
		{Name: "controversiality", Kind: tabular.Numeric},
		{Name: "permalink", Kind: tabular.Text},
		{Name: "parent_id", Kind: tabular.Text},
		{Name: "link_id", Kind: tabular.Text},
		{Name: "score_hidden", Kind: tabular.Bool},
		{Name: "collapsed", Kind: tabular.Bool},
		{Name: "collapsed_reason", Kind: tabular.Text},
		{Name: "collapsed_reason_code", Kind: tabular.Text},
		{Name: "no_follow", Kind: tabular.Bool},
		{Name: "can_gild", Kind: tabular.Bool},
		{Name: "can_mod_post", Kind: tabular.Bool},
		{Name: "is_submitter", Kind: tabular.Bool},
		{Name: "send_replies", Kind: tabular.Bool},
		{Name: "archived", Kind: tabular.Bool},
		{Name: "locked", Kind: tabular.Bool},
		{Name: "name", Kind: tabular.Text},
		{Name: "saved", Kind: tabular.Bool},
		{Name: "gildings", Kind: tabular.JSONText, Default: emptyObject},
		{Name: "all_awardings", Kind: tabular.JSONText, Default: emptyList},
		{Name: "awarders", Kind: tabular.JSONText, Default: emptyList},
		{Name: "author_patreon_flair", Kind: tabular.Bool},
		{Name: "likes", Kind: tabular.Bool},
		{Name: "mod_reports", Kind: tabular.JSONText, Default: emptyList},
		{Name: "user_reports", Kind: tabular.JSONText, Default: emptyList},
		{Name: "report_reasons", Kind: tabular.JSONText, Default: emptyList},
		{Name: "num_reports", Kind: tabular.Numeric},
		{Name: "banned_at_utc", Kind: tabular.Timestamp},
		{Name: "approved_at_utc", Kind: tabular.Timestamp},
		{Name: "approved_by", Kind: tabular.Text},
		{Name: "associated_award", Kind: tabular.Text},
		{Name: "unrepliable_reason", Kind: tabular.Text},
	}
}

func submissionColumns() tabular.Schema {
	return tabular.Schema{
		{Name: "id", Kind: tabular.Text},
		{Name: "author", Kind: tabular.Text},
		{Name: "author_fullname", Kind: tabular.Text},
		{Name: "author_is_blocked", Kind: tabular.Bool},
		{Name: "title", Kind: tabular.Prose},
		{Name: "selftext", Kind: tabular.Prose},
		{Name: "created_utc", Kind: tabular.Timestamp},
		{Name: "retrieved_on", Kind: tabular.Timestamp},
		{Name: "subreddit", Kind: tabular.Text},
		{Name: "subreddit_id", Kind: tabular.Text},
		{Name: "subreddit_type", Kind: tabular.Text},
		{Name: "score", Kind: tabular.Numeric},
		{Name: "ups", Kind: tabular.Numeric},
		{Name: "downs", Kind: tabular.Numeric},
		{Name: "upvote_ratio", Kind: tabular.Numeric},
		{Name: "num_comments", Kind: tabular.Numeric},
		{Name: "total_awards_received", Kind: tabular.Numeric},
		{Name: "gilded", Kind: tabular.Numeric},
		{Name: "distinguished", Kind: tabular.Enum, Default: "none"},
		{Name: "stickied", Kind: tabular.Bool},
		{Name: "is_self", Kind: tabular.Bool},
		{Name: "is_video", Kind: tabular.Bool},
		{Name: "is_original_content", Kind: tabular.Bool},
		{Name: "locked", Kind: tabular.Bool},
		{Name: "name", Kind: tabular.Text},
		{Name: "saved", Kind: tabular.Bool},
		{Name: "spoiler", Kind: tabular.Bool},
		{Name: "gildings", Kind: tabular.JSONText, Default: emptyObject},
		{Name: "all_awardings", Kind: tabular.JSONText, Default: emptyList},
		{Name: "awarders", Kind: tabular.JSONText, Default: emptyList},
		{Name: "media_only", Kind: tabular.Bool},
		{Name: "can_gild", Kind: tabular.Bool},
		{Name: "contest_mode", Kind: tabular.Bool},
		{Name: "no_follow", Kind: tabular.Bool},
		{Name: "author_premium", Kind: tabular.Bool},
		{Name: "author_patreon_flair", Kind: tabular.Bool},
		{Name: "author_flair_text", Kind: tabular.Text},
		{Name: "num_crossposts", Kind: tabular.Numeric},
		{Name: "pinned", Kind: tabular.Bool},
		{Name: "permalink", Kind: tabular.Text},
		{Name: "url", Kind: tabular.Text},
		{Name: "category", Kind: tabular.Text},
		{Name: "hide_score", Kind: tabular.Bool},
		{Name: "media", Kind: tabular.JSONText, Default: emptyObject},
		{Name: "media_metadata", Kind: tabular.JSONText, Default: emptyObject},
		{Name: "secure_media", Kind: tabular.JSONText, Default: emptyObject},
	}
}
