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

// Stats reports what one anonymization run substituted and what it skipped,
// per category and per skip reason.
type Stats struct {
	TotalTokens int `json:"total_tokens"`

	Identifiers int `json:"identifiers"`
	Strings     int `json:"strings"`
	Numbers     int `json:"numbers"`
	Dates       int `json:"dates"`

	// Skipped counts candidate tokens left unsubstituted, keyed by the
	// classifier's reason (keyword, comment, category disabled, below
	// minimum length). Whitespace and operators are not candidates and
	// only contribute to TotalTokens.
	Skipped map[string]int `json:"skipped,omitempty"`
}

func (s *Stats) countSubstitution(kind TokenKind) {
	switch kind {
	// a keyword only reaches here when forced by a custom token entry;
	// those are identifier-shaped words
	case KindIdentifier, KindKeyword:
		s.Identifiers++
	case KindString:
		s.Strings++
	case KindNumber:
		s.Numbers++
	case KindDate:
		s.Dates++
	}
}

func (s *Stats) countSkip(reason string) {
	if s.Skipped == nil {
		s.Skipped = make(map[string]int)
	}
	s.Skipped[reason]++
}

// Substituted is the total number of replaced tokens across categories.
func (s Stats) Substituted() int {
	return s.Identifiers + s.Strings + s.Numbers + s.Dates
}

// RestoreStats reports the outcome of one deanonymization run.
type RestoreStats struct {
	TotalTokens int `json:"total_tokens"`
	Restored    int `json:"restored"`
	Passed      int `json:"passed_through"`
	// Unresolved counts identifier tokens that looked like surrogates but
	// had no dictionary entry; in strict mode the first of these aborts
	// the run instead.
	Unresolved int `json:"unresolved"`
}
