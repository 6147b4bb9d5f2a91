// Package records defines the two record kinds the pipeline understands,
// comments and submissions, each with its drop policy and column schema
package records

import (
	"dumpsift/internal/core/listfile"
	"dumpsift/internal/core/sieve"
	"dumpsift/internal/core/tabular"
)

// DeletedAuthor is the marker source archives substitute for a removed
// account; records carrying it are classed with the bot rejections
const DeletedAuthor = "[deleted]"

// Kind describes one archive flavor: where its forum and author live,
// which checks drop a record, and what the kept rows look like
type Kind struct {
	Name        string
	ForumField  string
	AuthorField string
	Policy      []sieve.Check
	Columns     tabular.Schema
}

// Chain assembles the full drop policy for this kind. The allow-set gate
// and the author block gate always run first, in that order, ahead of the
// kind's own checks
func (k Kind) Chain(allow, block listfile.Set) sieve.Chain {
	chain := make(sieve.Chain, 0, len(k.Policy)+2)
	chain = append(chain,
		sieve.Check{
			Reason: sieve.ReasonNotInterestSubreddit,
			Match: func(r sieve.Record) bool {
				return !allow.Has(r.Str(k.ForumField))
			},
		},
		sieve.Check{
			Reason: sieve.ReasonBots,
			Match: func(r sieve.Record) bool {
				a := r.FoldedStr(k.AuthorField)
				return a == DeletedAuthor || block.Has(r.Str(k.AuthorField))
			},
		},
	)
	return append(chain, k.Policy...)
}

// moderationPolicy is the check set shared by every kind: quarantined,
// moderator-banned, removed, removed-with-category, and adult-flagged
// records are dropped
func moderationPolicy() []sieve.Check {
	return []sieve.Check{
		{Reason: sieve.ReasonQuarantine, Match: func(r sieve.Record) bool { return r.IsTrue("quarantine") }},
		{Reason: sieve.ReasonBanned, Match: func(r sieve.Record) bool { return r.Present("banned_by") }},
		{Reason: sieve.ReasonRemoved, Match: func(r sieve.Record) bool { return r.Present("removed_by") }},
		{Reason: sieve.ReasonRemovedCategory, Match: func(r sieve.Record) bool { return r.Present("removed_by_category") }},
		{Reason: sieve.ReasonOver18, Match: func(r sieve.Record) bool { return r.IsTrue("over_18") }},
	}
}

// Comments is the comment archive kind
func Comments() Kind {
	policy := moderationPolicy()
	policy = append(policy,
		sieve.Check{Reason: sieve.ReasonCrowdControl, Match: func(r sieve.Record) bool { return r.IsTrue("collapsed_because_crowd_control") }},
		sieve.Check{Reason: sieve.ReasonNonText, Match: func(r sieve.Record) bool { return r.Present("media_metadata") }},
		sieve.Check{Reason: sieve.ReasonControversial, Match: func(r sieve.Record) bool { return r.NumEquals("controversiality", 1) }},
		sieve.Check{Reason: sieve.ReasonModRemoved, Match: func(r sieve.Record) bool {
			return r.AnyPresent("mod_reason_by", "mod_reason_title", "removal_reason")
		}},
	)
	return Kind{
		Name:        "comments",
		ForumField:  "subreddit",
		AuthorField: "author",
		Policy:      policy,
		Columns:     commentColumns(),
	}
}

// Submissions is the submission archive kind
func Submissions() Kind {
	return Kind{
		Name:        "submissions",
		ForumField:  "subreddit",
		AuthorField: "author",
		Policy:      moderationPolicy(),
		Columns:     submissionColumns(),
	}
}

// Kinds maps the archive flavor names accepted on the command line
func Kinds() map[string]Kind {
	return map[string]Kind{
		"comments":    Comments(),
		"submissions": Submissions(),
	}
}
