package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Separator separates the tokens of a style name.
const Separator = "."

// DefaultTokenLimit is the maximum number of tokens of a style name we are
// willing to expand into variants. 12 tokens result in 4096 variants.
const DefaultTokenLimit = 12

// MaxTokenLimit caps every configured token limit. 20 tokens result in about a
// million variants.
const MaxTokenLimit = 20

// ErrEmptySelector is returned if a selector does not contain any tokens.
var ErrEmptySelector = errors.New("empty selector")

// ErrTooManyTokens is returned if a style name has more tokens than allowed
// for variant expansion.
var ErrTooManyTokens = errors.New("too many tokens in style name")

// Selector is a normalized style selector. The zero value is the empty selector,
// which never matches anything.
type Selector string

// Normalize creates the canonical selector for a raw style name.
// It returns the selector together with its token count. If no tokens remain after
// trimming, ErrEmptySelector is returned.
//
// Normalization is idempotent.
func Normalize(raw string) (Selector, int, error) {
	tokens := Tokenize(raw, 0)
	if len(tokens) == 0 {
		return "", 0, ErrEmptySelector
	}
	return Selector(strings.Join(tokens, Separator)), len(tokens), nil
}

// Tokenize splits a raw style name at separators, drops the first skip segments,
// trims the remaining ones and drops empty segments. The result is sorted and
// free of duplicates.
func Tokenize(raw string, skip int) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	segments := strings.Split(raw, Separator)
	if skip > 0 {
		if skip >= len(segments) {
			return nil
		}
		segments = segments[skip:]
	}
	tokens := make([]string, 0, len(segments))
	for _, seg := range segments {
		if t := strings.TrimSpace(seg); t != "" {
			tokens = append(tokens, t)
		}
	}
	sort.Strings(tokens)
	return dedup(tokens)
}

// dedup removes adjacent duplicates from a sorted slice, in place.
func dedup(tokens []string) []string {
	if len(tokens) < 2 {
		return tokens
	}
	j := 1
	for i := 1; i < len(tokens); i++ {
		if tokens[i] != tokens[j-1] {
			tokens[j] = tokens[i]
			j++
		}
	}
	return tokens[:j]
}

// String is the Stringer for selectors.
func (s Selector) String() string {
	return string(s)
}

// IsEmpty is a predicate: does s contain no tokens?
func (s Selector) IsEmpty() bool {
	return s == ""
}

// Tokens returns the tokens of s in sorted order.
func (s Selector) Tokens() []string {
	if s.IsEmpty() {
		return nil
	}
	return strings.Split(string(s), Separator)
}

// TokenCount returns the number of tokens of s.
func (s Selector) TokenCount() int {
	if s.IsEmpty() {
		return 0
	}
	return strings.Count(string(s), Separator) + 1
}

// Contains is a predicate: is token one of the tokens of s?
func (s Selector) Contains(token string) bool {
	token = strings.TrimSpace(token)
	for _, t := range s.Tokens() {
		if t == token {
			return true
		}
	}
	return false
}

// ClampTokenLimit maps a configured token limit to the limit in effect:
// n ≤ 0 selects DefaultTokenLimit, values above MaxTokenLimit are capped.
func ClampTokenLimit(n int) int {
	if n <= 0 {
		return DefaultTokenLimit
	}
	if n > MaxTokenLimit {
		return MaxTokenLimit
	}
	return n
}

// ExpandVariants expands a raw style name into all subsets of its tokens, using
// DefaultTokenLimit as an upper bound for the token count.
// See ExpandVariantsLimit.
func ExpandVariants(raw string, skip int) ([]string, error) {
	return ExpandVariantsLimit(raw, skip, DefaultTokenLimit)
}

// ExpandVariantsLimit expands a raw style name into selector variants.
// The name is tokenized as with Tokenize(raw, skip). For k tokens, all 2^k subsets are
// enumerated in increasing bitmask order (bit i selects the i-th sorted token), and
// each subset is joined with the separator. The result therefore has exactly 2^k
// entries, the first one being the empty string for the all-zero mask. Callers have to
// filter out blank entries before using a variant as a lookup key.
//
// k counts distinct tokens: duplicates collapse, so "a.a" has k = 1 and expands
// to ["", "a"].
//
// A blank raw name yields an empty result. If k exceeds limit, ErrTooManyTokens is
// returned. The limit is clamped with ClampTokenLimit.
func ExpandVariantsLimit(raw string, skip int, limit int) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	limit = ClampTokenLimit(limit)
	tokens := Tokenize(raw, skip)
	k := len(tokens)
	if k > limit {
		tracer().Errorf("style name %q has %d tokens, limit is %d", raw, k, limit)
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyTokens, k, limit)
	}
	n := 1 << k
	variants := make([]string, n)
	var b strings.Builder
	for mask := 0; mask < n; mask++ {
		b.Reset()
		for i, t := range tokens {
			if mask&(1<<i) == 0 {
				continue
			}
			if b.Len() > 0 {
				b.WriteString(Separator)
			}
			b.WriteString(t)
		}
		variants[mask] = b.String()
	}
	tracer().Debugf("style name %q expands to %d variants", raw, n)
	return variants, nil
}

// Append adds a token to a raw style name. If name is blank, token is returned.
func Append(name string, token string) string {
	token = strings.TrimSpace(token)
	if strings.TrimSpace(name) == "" {
		return token
	}
	if token == "" {
		return name
	}
	return name + Separator + token
}
