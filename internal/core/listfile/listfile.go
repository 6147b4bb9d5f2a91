// Package listfile loads flat-file membership sets (allow-listed forums,
// block-listed author identities)
package listfile

import (
	"bufio"
	"io"
	"os"
	"strings"

	perr "dumpsift/internal/platform/errors"

	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// Set is an immutable membership set of case-folded entries.
// Load it once per run; lookups are read-only and safe to share
type Set map[string]struct{}

// Load reads one entry per line from path, skipping blanks
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "open list file %s", path)
	}
	defer func() { _ = f.Close() }()
	return FromReader(f)
}

// FromReader builds a Set from r, one entry per line
func FromReader(r io.Reader) (Set, error) {
	s := Set{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		entry := strings.TrimSpace(sc.Text())
		if entry == "" {
			continue
		}
		s[fold.String(entry)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeArchive, "read list file")
	}
	return s, nil
}

// FromEntries builds a Set from in-memory entries (tests, defaults)
func FromEntries(entries ...string) Set {
	s := Set{}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		s[fold.String(e)] = struct{}{}
	}
	return s
}

// Has reports membership of entry, case-folded
func (s Set) Has(entry string) bool {
	_, ok := s[fold.String(entry)]
	return ok
}

// Len returns the number of entries
func (s Set) Len() int { return len(s) }
