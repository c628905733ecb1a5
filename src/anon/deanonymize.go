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

	log "github.com/sirupsen/logrus"

	"github.com/queryanonymizer/queryanonymizer/src/dialect"
)

// RestoreResult is the outcome of one Deanonymize call.
type RestoreResult struct {
	Text  string
	Stats RestoreStats
}

// Deanonymize reverses an anonymization run: every token whose text matches
// a decoding-dictionary key (case-insensitively) is replaced by the recorded
// original, re-cased to the token's own capitalization shape. Tokens without
// an entry pass through unchanged, which keeps partial decoding working when
// an AI tool normalized casing or introduced new tokens; they are counted in
// the stats.
//
// In strict mode the first surrogate-shaped token with no entry aborts with
// a MappingNotFoundError. Surrogate-shaped means an identifier token of at
// least the default minimum word length that is not a reserved word.
func Deanonymize(text string, dict map[string]string, strict bool) (*RestoreResult, error) {
	// The generic SQL keyword set only shapes tokens here; dictionary
	// entries for other dialects still match by text.
	keywords, err := dialect.Lookup(dialect.SQL)
	if err != nil {
		return nil, err
	}

	lookup := make(map[string]string, len(dict))
	for surrogate, original := range dict {
		lookup[canonical(surrogate)] = original
	}

	var out strings.Builder
	out.Grow(len(text))
	var stats RestoreStats
	for _, tok := range Tokenize(text, keywords) {
		stats.TotalTokens++
		switch tok.Kind {
		case KindWhitespace, KindOperator, KindComment:
			out.WriteString(tok.Text)
			continue
		}
		if original, ok := lookup[canonical(tok.Text)]; ok {
			out.WriteString(MatchCase(original, tok.Text))
			stats.Restored++
			continue
		}
		if tok.Kind == KindIdentifier && len(identifierBody(tok.Text)) >= DefaultMinWordLength {
			if strict {
				return nil, &MappingNotFoundError{Token: tok.Text}
			}
			stats.Unresolved++
		}
		out.WriteString(tok.Text)
		stats.Passed++
	}

	log.Debugf("restored %d of %d tokens, %d passed through, %d unresolved",
		stats.Restored, stats.TotalTokens, stats.Passed, stats.Unresolved)

	return &RestoreResult{Text: out.String(), Stats: stats}, nil
}
