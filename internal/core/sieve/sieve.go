// Package sieve classifies raw records through an ordered short-circuit
// predicate chain into a closed set of rejection reasons
package sieve

// Reason tags why a record was rejected. Values are stable: they key the
// statistics report and must match across runs
type Reason string

const (
	// ReasonBadLine covers blank lines and JSON parse failures
	ReasonBadLine Reason = "bad_lines"

	// ReasonNotInterestSubreddit marks forums outside the allow-list
	ReasonNotInterestSubreddit Reason = "not_interest_subreddit"

	// ReasonBots marks block-listed or deleted author identities
	ReasonBots Reason = "bots"

	// Policy reasons, applied per record kind after the shared gates

	ReasonQuarantine      Reason = "quarantine"
	ReasonBanned          Reason = "banned"
	ReasonRemoved         Reason = "removed"
	ReasonRemovedCategory Reason = "removed_category"
	ReasonOver18          Reason = "over_18"
	ReasonCrowdControl    Reason = "crowd_control"
	ReasonNonText         Reason = "non_text"
	ReasonControversial   Reason = "controversial"
	ReasonModRemoved      Reason = "mod_removed"
)

// Outcome is the tagged classification result: kept, or rejected with
// exactly one reason
type Outcome struct {
	Kept   bool
	Reason Reason
}

// Kept is the accepting outcome
var Kept = Outcome{Kept: true}

// Rejected builds a rejecting outcome for reason
func Rejected(reason Reason) Outcome { return Outcome{Reason: reason} }

// Check pairs a rejection reason with its predicate. Match must be a pure
// function of the record
type Check struct {
	Reason Reason
	Match  func(Record) bool
}

// Chain evaluates checks in order, stopping at the first match, so a
// record is only ever counted under one reason
type Chain []Check

// Classify runs rec through the chain
func (c Chain) Classify(rec Record) Outcome {
	for _, chk := range c {
		if chk.Match(rec) {
			return Rejected(chk.Reason)
		}
	}
	return Kept
}

// Reasons lists the chain's reason tags in evaluation order
func (c Chain) Reasons() []Reason {
	out := make([]Reason, 0, len(c))
	for _, chk := range c {
		out = append(out, chk.Reason)
	}
	return out
}
