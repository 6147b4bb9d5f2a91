package sieve

import "testing"

func TestDecodeLine(t *testing.T) {
	cases := []struct {
		name string
		in   string
		ok   bool
	}{
		{"object", `{"subreddit":"testsub","author":"alice"}`, true},
		{"empty object", `{}`, true},
		{"not json", `not-json`, false},
		{"blank", ``, false},
		{"json null", `null`, false},
		{"json array", `[1,2]`, false},
		{"json scalar", `42`, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec, ok := DecodeLine(c.in)
			if ok != c.ok {
				t.Fatalf("DecodeLine(%q) ok = %v, want %v", c.in, ok, c.ok)
			}
			if ok && rec == nil {
				t.Fatalf("DecodeLine(%q) returned nil record", c.in)
			}
		})
	}
}

func TestRecordAccessors(t *testing.T) {
	rec, ok := DecodeLine(`{
		"subreddit": "TestSub",
		"quarantine": true,
		"stickied": false,
		"controversiality": 1,
		"banned_by": null,
		"removed_by": "mod",
		"score": 3.5
	}`)
	if !ok {
		t.Fatalf("DecodeLine failed")
	}

	if got := rec.Str("subreddit"); got != "TestSub" {
		t.Fatalf("Str = %q", got)
	}
	if got := rec.FoldedStr("subreddit"); got != "testsub" {
		t.Fatalf("FoldedStr = %q", got)
	}
	if got := rec.Str("missing"); got != "" {
		t.Fatalf("Str(missing) = %q", got)
	}
	if got := rec.Str("score"); got != "" {
		t.Fatalf("Str(non-string) = %q", got)
	}

	if !rec.IsTrue("quarantine") {
		t.Fatalf("IsTrue(quarantine) = false")
	}
	if rec.IsTrue("stickied") || rec.IsTrue("missing") || rec.IsTrue("controversiality") {
		t.Fatalf("IsTrue false-cases failed")
	}

	if !rec.NumEquals("controversiality", 1) {
		t.Fatalf("NumEquals(controversiality, 1) = false")
	}
	if rec.NumEquals("controversiality", 0) || rec.NumEquals("missing", 1) {
		t.Fatalf("NumEquals false-cases failed")
	}

	if rec.Present("banned_by") {
		t.Fatalf("Present(null) should be false")
	}
	if !rec.Present("removed_by") {
		t.Fatalf("Present(removed_by) = false")
	}
	if !rec.AnyPresent("banned_by", "removed_by") {
		t.Fatalf("AnyPresent should see removed_by")
	}
	if rec.AnyPresent("banned_by", "missing") {
		t.Fatalf("AnyPresent over absent keys should be false")
	}
}

func TestChain_ShortCircuitOrder(t *testing.T) {
	chain := Chain{
		{Reason: ReasonBots, Match: func(r Record) bool { return r.IsTrue("is_bot") }},
		{Reason: ReasonRemoved, Match: func(r Record) bool { return r.Present("removed_by") }},
	}

	// matches both checks; only the first may count
	rec := Record{"is_bot": true, "removed_by": "mod"}
	out := chain.Classify(rec)
	if out.Kept || out.Reason != ReasonBots {
		t.Fatalf("Classify = %+v, want rejected %q", out, ReasonBots)
	}

	// matches only the second
	out = chain.Classify(Record{"removed_by": "mod"})
	if out.Kept || out.Reason != ReasonRemoved {
		t.Fatalf("Classify = %+v, want rejected %q", out, ReasonRemoved)
	}

	// survives every check
	out = chain.Classify(Record{"id": "x"})
	if !out.Kept {
		t.Fatalf("Classify = %+v, want kept", out)
	}
}

func TestChain_Reasons(t *testing.T) {
	chain := Chain{
		{Reason: ReasonQuarantine, Match: func(Record) bool { return false }},
		{Reason: ReasonOver18, Match: func(Record) bool { return false }},
	}
	got := chain.Reasons()
	if len(got) != 2 || got[0] != ReasonQuarantine || got[1] != ReasonOver18 {
		t.Fatalf("Reasons = %v", got)
	}
}
