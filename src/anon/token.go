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
	"unicode"
)

// TokenKind is the lexical category assigned by the tokenizer.
type TokenKind int

const (
	KindWhitespace TokenKind = iota
	KindOperator
	KindComment
	KindKeyword
	KindIdentifier
	KindString
	KindNumber
	KindDate
)

var kindNames = []string{
	"whitespace",
	"operator",
	"comment",
	"keyword",
	"identifier",
	"string",
	"number",
	"date",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token is one lexical span of the input. Start and End are byte offsets
// into the original text, with Text == input[Start:End]. Tokens are produced
// in order, covering the input with no gaps and no overlaps.
type Token struct {
	Start int
	End   int
	Text  string
	Kind  TokenKind
}

// CasePattern is the capitalization shape of a token.
type CasePattern int

const (
	CaseLower CasePattern = iota
	CaseUpper
	CaseTitle
	CaseMixed
)

// DetectCasePattern classifies the capitalization shape of s. Strings with
// no letters at all report CaseLower.
func DetectCasePattern(s string) CasePattern {
	var upper, lower int
	firstIsUpper := false
	seenLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if !seenLetter {
			seenLetter = true
			firstIsUpper = unicode.IsUpper(r)
		}
		if unicode.IsUpper(r) {
			upper++
		} else {
			lower++
		}
	}
	switch {
	case upper == 0:
		return CaseLower
	case lower == 0:
		return CaseUpper
	case firstIsUpper && upper == 1:
		return CaseTitle
	default:
		return CaseMixed
	}
}

// MatchCase re-cases replacement to follow the capitalization shape of
// observed. Uniform shapes (all-upper, all-lower, capitalized) are applied
// wholesale; mixed-case is transferred letter by letter, with any surplus
// letters of replacement keeping their own case. The character positions of
// replacement are otherwise untouched, so underscores, digits and quotes
// stay where the generator put them.
func MatchCase(replacement, observed string) string {
	switch DetectCasePattern(observed) {
	case CaseUpper:
		return strings.ToUpper(replacement)
	case CaseLower:
		return strings.ToLower(replacement)
	case CaseTitle:
		return titleCase(replacement)
	default:
		return zipCase(replacement, observed)
	}
}

func titleCase(s string) string {
	lowered := []rune(strings.ToLower(s))
	for i, r := range lowered {
		if unicode.IsLetter(r) {
			lowered[i] = unicode.ToUpper(r)
			break
		}
	}
	return string(lowered)
}

// zipCase copies the per-position case of observed onto replacement.
func zipCase(replacement, observed string) string {
	repl := []rune(replacement)
	obs := []rune(observed)
	for i := range repl {
		if !unicode.IsLetter(repl[i]) {
			continue
		}
		if i < len(obs) && unicode.IsLetter(obs[i]) {
			if unicode.IsUpper(obs[i]) {
				repl[i] = unicode.ToUpper(repl[i])
			} else {
				repl[i] = unicode.ToLower(repl[i])
			}
		}
	}
	return string(repl)
}
