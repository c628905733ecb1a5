/*
Copyright (c) the queryanonymizer authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package anon

import (
	"strings"

	"github.com/samber/lo"
)

const DefaultMinWordLength = 3

// Config controls one anonymization run. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Dialect selects the keyword set, see the dialect package for the
	// supported names. Keywords are never anonymized.
	Dialect string

	// CustomKeywords are merged into the dialect's keyword set.
	CustomKeywords []string

	// CustomTokens are values that are always substituted wherever they
	// appear, overriding keyword status, category toggles and the minimum
	// length. Matched case-insensitively, bracket quoting ignored.
	CustomTokens []string

	// MinWordLength is the minimum identifier length for substitution;
	// shorter identifiers pass through unchanged.
	MinWordLength int

	// Per-category toggles.
	AnonymizeIdentifiers bool
	AnonymizeStrings     bool
	AnonymizeNumbers     bool
	AnonymizeDates       bool

	// SeedDictionary maps an original value to a caller-chosen surrogate
	// that takes precedence over generated ones.
	SeedDictionary map[string]string

	// RandomSeed pins the surrogate generator for reproducible runs.
	// Zero means a fresh random seed per call.
	RandomSeed int64
}

func DefaultConfig() Config {
	return Config{
		Dialect:              "SQL",
		MinWordLength:        DefaultMinWordLength,
		AnonymizeIdentifiers: true,
		AnonymizeStrings:     true,
		AnonymizeNumbers:     true,
		AnonymizeDates:       true,
	}
}

// Skip reasons recorded in a Decision and aggregated into Stats.
const (
	ReasonEligible     = "eligible"
	ReasonSyntax       = "syntax"
	ReasonKeyword      = "keyword"
	ReasonComment      = "comment"
	ReasonToggledOff   = "category disabled"
	ReasonBelowMinimum = "below minimum length"
)

// Decision is the classifier's verdict for one token.
type Decision struct {
	Kind     TokenKind
	Eligible bool
	Reason   string
}

// Classify decides whether tok may be substituted. The rules apply in a
// fixed priority order: syntax (whitespace, operators, comments) is never
// eligible, a configured custom token always is, keywords never are, then
// the category toggle, then the minimum identifier length. Outside the
// custom token list, keyword status wins, so a short reserved word is never
// a candidate and a long one is never anonymized.
func Classify(tok Token, cfg Config) Decision {
	d := Decision{Kind: tok.Kind}

	switch tok.Kind {
	case KindWhitespace, KindOperator:
		d.Reason = ReasonSyntax
		return d
	case KindComment:
		d.Reason = ReasonComment
		return d
	}

	if isCustomToken(tok.Text, cfg.CustomTokens) {
		d.Eligible = true
		d.Reason = ReasonEligible
		return d
	}

	if tok.Kind == KindKeyword {
		d.Reason = ReasonKeyword
		return d
	}

	var enabled bool
	switch tok.Kind {
	case KindIdentifier:
		enabled = cfg.AnonymizeIdentifiers
	case KindString:
		enabled = cfg.AnonymizeStrings
	case KindNumber:
		enabled = cfg.AnonymizeNumbers
	case KindDate:
		enabled = cfg.AnonymizeDates
	}
	if !enabled {
		d.Reason = ReasonToggledOff
		return d
	}

	if tok.Kind == KindIdentifier && len(identifierBody(tok.Text)) < cfg.MinWordLength {
		d.Reason = ReasonBelowMinimum
		return d
	}

	d.Eligible = true
	d.Reason = ReasonEligible
	return d
}

// isCustomToken reports whether text is force-anonymized by configuration.
// Custom token lists are short, a linear scan is fine.
func isCustomToken(text string, custom []string) bool {
	if len(custom) == 0 {
		return false
	}
	body := identifierBody(text)
	return lo.ContainsBy(custom, func(c string) bool {
		return strings.EqualFold(body, c)
	})
}

// identifierBody strips bracket quoting so [id] and id are measured the
// same way against the minimum length.
func identifierBody(s string) string {
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}
