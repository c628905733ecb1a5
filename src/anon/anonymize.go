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
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/queryanonymizer/queryanonymizer/src/dialect"
)

// Result is the outcome of one Anonymize call. DecodingDictionary maps each
// surrogate back to the original value and is required to reverse the run;
// it is self-contained and never merged across runs.
type Result struct {
	Text               string
	DecodingDictionary map[string]string
	Stats              Stats
}

// Anonymize replaces sensitive literals and identifiers in text with
// randomized surrogates, leaving keywords, operators, comments and layout
// untouched. Repeated occurrences of the same value (case-insensitively)
// receive the same surrogate, so the structure of the query stays readable.
//
// Each call is self-contained: the mapping lives only for the call and two
// calls over the same input produce different surrogates (unless cfg pins
// RandomSeed). Concurrent calls are safe since nothing is shared but the
// read-only keyword registry.
func Anonymize(text string, cfg Config) (*Result, error) {
	base, err := dialect.Lookup(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	keywords := base.Merge(cfg.CustomKeywords...)
	if cfg.MinWordLength <= 0 {
		cfg.MinWordLength = DefaultMinWordLength
	}

	tokens := Tokenize(text, keywords)
	table := NewMappingTable(keywords)

	// Register every candidate value up front so a generated surrogate can
	// never collide with a value that stays in the output verbatim (short
	// identifiers, toggled-off categories, later occurrences).
	for _, tok := range tokens {
		switch tok.Kind {
		case KindIdentifier, KindString, KindNumber, KindDate:
			table.NoteOriginal(tok.Text)
		}
	}

	// Seeded surrogates go through the same availability checks as generated
	// ones: a seed that spells a reserved word or a value present in the
	// query would survive into the output and decode wrongly.
	for original, surrogate := range cfg.SeedDictionary {
		if !table.Available(surrogate) {
			return nil, fmt.Errorf("seed dictionary: surrogate %q is unavailable (reserved word, already used, or present in the query)", surrogate)
		}
		if err := table.Insert(original, surrogate); err != nil {
			return nil, fmt.Errorf("seed dictionary: %w", err)
		}
	}

	gen := NewSurrogateGenerator(table, cfg.RandomSeed)

	var out strings.Builder
	out.Grow(len(text))
	var stats Stats
	for _, tok := range tokens {
		stats.TotalTokens++
		decision := Classify(tok, cfg)
		if !decision.Eligible {
			if tok.Kind != KindWhitespace && tok.Kind != KindOperator {
				stats.countSkip(decision.Reason)
			}
			out.WriteString(tok.Text)
			continue
		}
		surrogate, err := gen.Surrogate(tok)
		if err != nil {
			return nil, err
		}
		out.WriteString(surrogate)
		stats.countSubstitution(tok.Kind)
	}

	log.Debugf("anonymized %d of %d tokens (%d identifiers, %d strings, %d numbers, %d dates), %d mapping entries",
		stats.Substituted(), stats.TotalTokens, stats.Identifiers, stats.Strings,
		stats.Numbers, stats.Dates, table.Len())

	return &Result{
		Text:               out.String(),
		DecodingDictionary: table.DecodingDictionary(),
		Stats:              stats,
	}, nil
}
