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
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// maxGenerationAttempts bounds the retry-until-unique loop. Running out is a
// first-class failure (SurrogateCollisionExhaustedError), not a hang;
// realistic inputs never get close.
const maxGenerationAttempts = 64

const (
	consonants = "bcdfghjklmnpqrstvwz"
	vowels     = "aeiou"
)

// SurrogateGenerator produces replacement values in the same category and
// shape as the original: a number stays a number of the same digit count, a
// date stays a valid date in the same layout, a string literal keeps its
// delimiters and length, an identifier becomes a pronounceable token of the
// same length. Surrogates are recorded in the mapping table and reused for
// repeated occurrences of the same original.
type SurrogateGenerator struct {
	rng   *rand.Rand
	table *MappingTable
}

func NewSurrogateGenerator(table *MappingTable, seed int64) *SurrogateGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SurrogateGenerator{
		rng:   rand.New(rand.NewSource(seed)),
		table: table,
	}
}

// Surrogate returns the replacement text for tok, re-cased to the token's
// own capitalization shape. The first occurrence of a value generates and
// records the surrogate; later occurrences reuse it.
func (g *SurrogateGenerator) Surrogate(tok Token) (string, error) {
	if surrogate, ok := g.table.Lookup(tok.Text); ok {
		return MatchCase(surrogate, tok.Text), nil
	}

	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		candidate := g.generate(tok)
		if !g.table.Available(candidate) {
			continue
		}
		if err := g.table.Insert(tok.Text, candidate); err != nil {
			continue
		}
		return MatchCase(candidate, tok.Text), nil
	}
	return "", &SurrogateCollisionExhaustedError{Original: tok.Text, Attempts: maxGenerationAttempts}
}

func (g *SurrogateGenerator) generate(tok Token) string {
	switch tok.Kind {
	case KindNumber:
		return g.number(tok.Text)
	case KindDate:
		return g.date(tok.Text)
	case KindString:
		return g.cipher(tok.Text)
	default:
		return g.identifier(tok.Text)
	}
}

// identifier builds a pronounceable same-length replacement: letters become
// alternating consonants and vowels, digits become digits, and every other
// character (underscores, brackets, dots) stays where it was.
func (g *SurrogateGenerator) identifier(s string) string {
	out := []byte(strings.ToLower(s))
	letterIdx := 0
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z':
			if letterIdx%2 == 0 {
				out[i] = consonants[g.rng.Intn(len(consonants))]
			} else {
				out[i] = vowels[g.rng.Intn(len(vowels))]
			}
			letterIdx++
		case isDigit(c):
			out[i] = byte('0' + g.rng.Intn(10))
		}
	}
	return string(out)
}

// cipher replaces letters and digits one for one and keeps everything else,
// so a quoted literal keeps its delimiters, length and internal spacing.
func (g *SurrogateGenerator) cipher(s string) string {
	out := []byte(strings.ToLower(s))
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = byte('a' + g.rng.Intn(26))
		case isDigit(c):
			out[i] = byte('0' + g.rng.Intn(10))
		}
	}
	return string(out)
}

// number keeps the sign, digit counts, decimal point and exponent marker of
// the original. Plausible calendar years stay within a year-like range so a
// 4-digit count doesn't turn into an impossible year.
func (g *SurrogateGenerator) number(s string) string {
	if looksLikeYear(s) {
		return strconv.Itoa(1950 + g.rng.Intn(2035-1950+1))
	}
	out := []byte(s)
	leading := true
	for i, c := range out {
		if c == '-' && i == 0 {
			continue // sign
		}
		if !isDigit(c) {
			// after '.', 'e' or an exponent sign any digit is fine
			leading = false
			continue
		}
		if leading && i+1 < len(out) && isDigit(out[i+1]) {
			out[i] = byte('1' + g.rng.Intn(9))
		} else {
			out[i] = byte('0' + g.rng.Intn(10))
		}
		leading = false
	}
	return string(out)
}

func looksLikeYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= 1900 && n <= 2100
}

// date shifts the original by a bounded random delta and renders it back in
// the same layout, so the surrogate is always a syntactically valid date.
func (g *SurrogateGenerator) date(s string) string {
	layout := dateLayout(s)
	parsed, err := time.Parse(layout, s)
	if err != nil {
		// structurally date-shaped but not a real calendar date
		// (e.g. 2024-13-45): fall back to a random valid one
		parsed = time.Date(1970+g.rng.Intn(60), time.Month(1+g.rng.Intn(12)),
			1+g.rng.Intn(28), g.rng.Intn(24), g.rng.Intn(60), g.rng.Intn(60), 0, time.UTC)
	}
	delta := time.Duration(1+g.rng.Intn(120)) * 24 * time.Hour
	if len(layout) > len("2006-01-02") {
		delta += time.Duration(1+g.rng.Intn(10000)) * time.Minute
	}
	if g.rng.Intn(2) == 0 {
		delta = -delta
	}
	return parsed.Add(delta).Format(layout)
}

func dateLayout(s string) string {
	switch {
	case strings.ContainsRune(s, 'T'):
		return "2006-01-02T15:04:05"
	case len(s) > len("2006-01-02"):
		return "2006-01-02 15:04:05"
	default:
		return "2006-01-02"
	}
}
