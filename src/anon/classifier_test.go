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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPriorityOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinWordLength = 1

	tests := []struct {
		name     string
		token    Token
		eligible bool
		reason   string
	}{
		// keyword status wins regardless of length or toggles
		{"short keyword", Token{Text: "IN", Kind: KindKeyword}, false, ReasonKeyword},
		{"long keyword", Token{Text: "CURRENT_TIMESTAMP", Kind: KindKeyword}, false, ReasonKeyword},
		{"whitespace", Token{Text: "  ", Kind: KindWhitespace}, false, ReasonSyntax},
		{"operator", Token{Text: ">=", Kind: KindOperator}, false, ReasonSyntax},
		{"comment", Token{Text: "-- secret", Kind: KindComment}, false, ReasonComment},
		{"identifier", Token{Text: "customer", Kind: KindIdentifier}, true, ReasonEligible},
		{"string", Token{Text: "'Jane'", Kind: KindString}, true, ReasonEligible},
		{"number", Token{Text: "42", Kind: KindNumber}, true, ReasonEligible},
		{"date", Token{Text: "2023-06-15", Kind: KindDate}, true, ReasonEligible},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Classify(tc.token, cfg)
			assert.Equal(t, tc.eligible, d.Eligible)
			assert.Equal(t, tc.reason, d.Reason)
		})
	}
}

func TestClassifyCategoryToggles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AnonymizeIdentifiers = false
	cfg.AnonymizeStrings = false
	cfg.AnonymizeNumbers = false
	cfg.AnonymizeDates = false

	for _, tok := range []Token{
		{Text: "customer", Kind: KindIdentifier},
		{Text: "'Jane'", Kind: KindString},
		{Text: "42", Kind: KindNumber},
		{Text: "2023-06-15", Kind: KindDate},
	} {
		d := Classify(tok, cfg)
		assert.False(t, d.Eligible, "token %q", tok.Text)
		assert.Equal(t, ReasonToggledOff, d.Reason)
	}
}

func TestClassifyCustomTokens(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomTokens = []string{"id", "from", "Secret_Col"}
	cfg.AnonymizeIdentifiers = false

	// a custom token beats keyword status, the toggle and the length rule
	for _, tok := range []Token{
		{Text: "id", Kind: KindIdentifier},
		{Text: "[id]", Kind: KindIdentifier},
		{Text: "FROM", Kind: KindKeyword},
		{Text: "secret_col", Kind: KindIdentifier},
	} {
		d := Classify(tok, cfg)
		assert.True(t, d.Eligible, "token %q", tok.Text)
		assert.Equal(t, ReasonEligible, d.Reason)
	}

	// unlisted tokens follow the normal rules
	d := Classify(Token{Text: "SELECT", Kind: KindKeyword}, cfg)
	assert.False(t, d.Eligible)
	assert.Equal(t, ReasonKeyword, d.Reason)
	d = Classify(Token{Text: "customer", Kind: KindIdentifier}, cfg)
	assert.False(t, d.Eligible)
	assert.Equal(t, ReasonToggledOff, d.Reason)

	// syntax is never forced
	d = Classify(Token{Text: "-- id", Kind: KindComment}, cfg)
	assert.False(t, d.Eligible)
}

func TestClassifyMinimumLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinWordLength = 4

	d := Classify(Token{Text: "id", Kind: KindIdentifier}, cfg)
	assert.False(t, d.Eligible)
	assert.Equal(t, ReasonBelowMinimum, d.Reason)

	d = Classify(Token{Text: "customer", Kind: KindIdentifier}, cfg)
	assert.True(t, d.Eligible)

	// bracket quoting does not count towards the length
	d = Classify(Token{Text: "[id]", Kind: KindIdentifier}, cfg)
	assert.False(t, d.Eligible)

	// the threshold applies to identifiers only
	d = Classify(Token{Text: "7", Kind: KindNumber}, cfg)
	assert.True(t, d.Eligible)
}
