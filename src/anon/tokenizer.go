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

	"github.com/queryanonymizer/queryanonymizer/src/dialect"
)

// Tokenize splits text into an ordered sequence of tokens covering the whole
// input: concatenating the Text of all tokens, in order, reproduces text
// byte for byte. It needs no grammar and never fails; anything that matches
// no known pattern is emitted as an operator token.
//
// Words whose upper-cased form is in keywords come back as KindKeyword,
// everything else word-shaped as KindIdentifier. Comments (-- and /* */) are
// their own kind so that downstream stages can leave them alone.
func Tokenize(text string, keywords dialect.KeywordSet) []Token {
	var tokens []Token
	var lastSig *Token // last non-whitespace, non-comment token

	emit := func(start, end int, kind TokenKind) {
		tokens = append(tokens, Token{Start: start, End: end, Text: text[start:end], Kind: kind})
		if kind != KindWhitespace && kind != KindComment {
			lastSig = &tokens[len(tokens)-1]
		}
	}

	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case isSpace(c):
			j := i + 1
			for j < len(text) && isSpace(text[j]) {
				j++
			}
			emit(i, j, KindWhitespace)
			i = j

		case c == '-' && i+1 < len(text) && text[i+1] == '-':
			j := i + 2
			for j < len(text) && text[j] != '\n' {
				j++
			}
			emit(i, j, KindComment)
			i = j

		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			j := strings.Index(text[i+2:], "*/")
			end := len(text)
			if j >= 0 {
				end = i + 2 + j + 2
			}
			emit(i, end, KindComment)
			i = end

		case c == '\'' || c == '"':
			end := scanQuoted(text, i, c)
			emit(i, end, KindString)
			i = end

		case c == '[':
			if end, ok := scanBracketed(text, i); ok {
				emit(i, end, KindIdentifier)
				i = end
			} else {
				emit(i, i+1, KindOperator)
				i++
			}

		case isDigit(c):
			if end := matchDate(text, i); end > 0 {
				emit(i, end, KindDate)
				i = end
			} else {
				end := scanNumber(text, i)
				emit(i, end, KindNumber)
				i = end
			}

		case c == '-' && i+1 < len(text) && isDigit(text[i+1]) && signAllowed(lastSig):
			end := scanNumber(text, i+1)
			emit(i, end, KindNumber)
			i = end

		case isWordStart(c):
			j := i + 1
			for j < len(text) && isWordChar(text[j]) {
				j++
			}
			kind := KindIdentifier
			if keywords.Contains(text[i:j]) {
				kind = KindKeyword
			}
			emit(i, j, kind)
			i = j

		default:
			end := scanOperator(text, i)
			emit(i, end, KindOperator)
			i = end
		}
	}
	return tokens
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isWordChar(c byte) bool {
	return isWordStart(c) || isDigit(c)
}

// signAllowed reports whether a '-' in front of a digit run is a numeric
// sign rather than a binary minus. It is a sign at the start of the input,
// after a keyword (WHERE -3) or after any operator except a closing paren.
func signAllowed(prev *Token) bool {
	if prev == nil {
		return true
	}
	switch prev.Kind {
	case KindKeyword:
		return true
	case KindOperator:
		return !strings.HasSuffix(prev.Text, ")")
	default:
		return false
	}
}

// scanQuoted consumes a quoted literal starting at the opening quote,
// honoring doubled-quote escapes (''). An unterminated literal runs to the
// end of the input; tokenization still succeeds.
func scanQuoted(text string, start int, quote byte) int {
	i := start + 1
	for i < len(text) {
		if text[i] != quote {
			i++
			continue
		}
		if i+1 < len(text) && text[i+1] == quote {
			i += 2 // escaped quote inside the literal
			continue
		}
		return i + 1
	}
	return len(text)
}

// scanBracketed consumes a [bracket-quoted] identifier (TSQL objects, DAX
// columns and measures). The brackets must close on the same line; anything
// else leaves '[' to be emitted as a plain operator.
func scanBracketed(text string, start int) (int, bool) {
	for i := start + 1; i < len(text); i++ {
		switch text[i] {
		case ']':
			if i == start+1 {
				return 0, false // empty []
			}
			return i + 1, true
		case '\n', '[':
			return 0, false
		}
	}
	return 0, false
}

// matchDate matches an ISO date at start (YYYY-MM-DD), optionally followed
// by a time suffix ([ T]HH:MM:SS). Returns the end offset, or 0 when the
// text there is not a date. Checked before the number rules so a date is
// never split into three numbers.
func matchDate(text string, start int) int {
	end := matchDigitPattern(text, start, "dddd-dd-dd")
	if end == 0 {
		return 0
	}
	if end < len(text) && (text[end] == ' ' || text[end] == 'T') {
		if timeEnd := matchDigitPattern(text, end+1, "dd:dd:dd"); timeEnd > 0 {
			end = timeEnd
		}
	}
	if end < len(text) && (isWordChar(text[end]) || text[end] == '.') {
		return 0
	}
	return end
}

// matchDigitPattern matches text at start against a shape where 'd' stands
// for a digit and any other byte stands for itself.
func matchDigitPattern(text string, start int, pattern string) int {
	if start+len(pattern) > len(text) {
		return 0
	}
	for i := 0; i < len(pattern); i++ {
		c := text[start+i]
		if pattern[i] == 'd' {
			if !isDigit(c) {
				return 0
			}
		} else if c != pattern[i] {
			return 0
		}
	}
	return start + len(pattern)
}

// scanNumber consumes a digit run with at most one decimal point and an
// optional exponent. start must point at the first digit.
func scanNumber(text string, start int) int {
	i := start
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	if i+1 < len(text) && text[i] == '.' && isDigit(text[i+1]) {
		i += 2
		for i < len(text) && isDigit(text[i]) {
			i++
		}
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1
		if j < len(text) && (text[j] == '+' || text[j] == '-') {
			j++
		}
		if j < len(text) && isDigit(text[j]) {
			i = j
			for i < len(text) && isDigit(text[i]) {
				i++
			}
		}
	}
	return i
}

// scanOperator consumes a run of operator and punctuation characters,
// breaking before anything that starts a different token (a comment opener
// or a signed number after an operator).
func scanOperator(text string, start int) int {
	i := start
	for i < len(text) {
		c := text[i]
		if isSpace(c) || isWordChar(c) || c == '\'' || c == '"' || c == '[' {
			break
		}
		if i > start {
			if c == '-' && i+1 < len(text) && (text[i+1] == '-' || isDigit(text[i+1])) {
				break
			}
			if c == '/' && i+1 < len(text) && text[i+1] == '*' {
				break
			}
		}
		i++
	}
	if i == start {
		return start + 1 // unknown byte, emit it alone
	}
	return i
}
