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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queryanonymizer/queryanonymizer/src/dialect"
)

func sqlKeywords(t *testing.T) dialect.KeywordSet {
	t.Helper()
	set, err := dialect.Lookup(dialect.SQL)
	require.NoError(t, err)
	return set
}

// Concatenating all token spans, in order, must reproduce the input exactly,
// for any input.
func TestTokenizeCoverage(t *testing.T) {
	inputs := []string{
		"",
		"SELECT * FROM orders WHERE id = 42;",
		"select\n\tname,\n\ttotal\nfrom sales.orders",
		`INSERT INTO t VALUES ('O''Brien', "quoted id", 3.14, -7, 1e-5)`,
		"WHERE created_at >= '2023-06-15 10:30:00' -- trailing comment",
		"/* block\ncomment */ SELECT [Total Sales] FROM [Fact Table]",
		"broken 'unterminated literal",
		"weird @@ ## $$ ?? tokens \x00\x01",
		"a<=b AND c<>d OR e!=f",
		"2024-01-02T03:04:05 2024-13-45 12:34:56",
	}
	keywords := sqlKeywords(t)
	for _, input := range inputs {
		tokens := Tokenize(input, keywords)
		var sb strings.Builder
		for _, tok := range tokens {
			assert.Equal(t, input[tok.Start:tok.End], tok.Text)
			sb.WriteString(tok.Text)
		}
		assert.Equal(t, input, sb.String(), "coverage broken for %q", input)
	}
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenKind
	}{
		{
			"keywords and identifiers",
			"SELECT customer_id FROM orders",
			[]TokenKind{KindKeyword, KindWhitespace, KindIdentifier, KindWhitespace,
				KindKeyword, KindWhitespace, KindIdentifier},
		},
		{
			"string literal with escaped quote",
			"'O''Brien'",
			[]TokenKind{KindString},
		},
		{
			"double-quoted identifier is one string token",
			`"Customer Name"`,
			[]TokenKind{KindString},
		},
		{
			"numbers",
			"42 3.14 1e-5",
			[]TokenKind{KindNumber, KindWhitespace, KindNumber, KindWhitespace,
				KindNumber},
		},
		{
			// a minus after a literal is a binary operator even across
			// whitespace, as in "42 -7"
			"minus after number is not a sign",
			"42 -7",
			[]TokenKind{KindNumber, KindWhitespace, KindOperator, KindNumber},
		},
		{
			"sign at start of input",
			"-7",
			[]TokenKind{KindNumber},
		},
		{
			"date before number rules",
			"2023-06-15",
			[]TokenKind{KindDate},
		},
		{
			"datetime with time suffix",
			"'2023-06-15 10:30:00'",
			[]TokenKind{KindString},
		},
		{
			"bare datetime",
			"2023-06-15T10:30:00",
			[]TokenKind{KindDate},
		},
		{
			"line comment",
			"id -- note",
			[]TokenKind{KindIdentifier, KindWhitespace, KindComment},
		},
		{
			"block comment",
			"/* hidden */id",
			[]TokenKind{KindComment, KindIdentifier},
		},
		{
			"bracket-quoted identifier",
			"[Total Sales]",
			[]TokenKind{KindIdentifier},
		},
		{
			"unclosed bracket falls back to operator",
			"[a\nb]",
			[]TokenKind{KindOperator, KindIdentifier, KindWhitespace, KindIdentifier, KindOperator},
		},
		{
			"binary minus is not a sign",
			"a-3",
			[]TokenKind{KindIdentifier, KindOperator, KindNumber},
		},
		{
			"minus after operator is a sign",
			"x=-3",
			[]TokenKind{KindIdentifier, KindOperator, KindNumber},
		},
	}

	keywords := sqlKeywords(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens := Tokenize(tc.input, keywords)
			kinds := make([]TokenKind, len(tokens))
			for i, tok := range tokens {
				kinds[i] = tok.Kind
			}
			assert.Equal(t, tc.want, kinds, "input %q, tokens %+v", tc.input, tokens)
		})
	}
}

func TestTokenizeKeywordIsCaseInsensitive(t *testing.T) {
	keywords := sqlKeywords(t)
	for _, word := range []string{"select", "Select", "SELECT"} {
		tokens := Tokenize(word, keywords)
		require.Len(t, tokens, 1)
		assert.Equal(t, KindKeyword, tokens[0].Kind)
	}
}

func TestTokenizeInvalidDateIsNumbers(t *testing.T) {
	// month 13 and day 45 are still digit-shaped, so 2024-13-45 matches the
	// date pattern structurally; a trailing letter must break the match.
	tokens := Tokenize("2024-01-02abc", sqlKeywords(t))
	require.NotEmpty(t, tokens)
	assert.Equal(t, KindNumber, tokens[0].Kind)
	assert.Equal(t, "2024", tokens[0].Text)
}

func TestDetectCasePattern(t *testing.T) {
	tests := []struct {
		input string
		want  CasePattern
	}{
		{"customer", CaseLower},
		{"CUSTOMER", CaseUpper},
		{"Customer", CaseTitle},
		{"CustomerID", CaseMixed},
		{"customer_id", CaseLower},
		{"Order_id", CaseTitle},
		{"42", CaseLower},
		{"", CaseLower},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DetectCasePattern(tc.input), "input %q", tc.input)
	}
}

func TestMatchCase(t *testing.T) {
	tests := []struct {
		replacement string
		observed    string
		want        string
	}{
		{"vapo_ti", "CUSTOMER_ID", "VAPO_TI"},
		{"vapo_ti", "customer_id", "vapo_ti"},
		{"vapo_ti", "Customer_id", "Vapo_ti"},
		{"vapoti", "CuStOmEr", "VaPoTi"},
		{"v4po", "C4st", "V4po"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, MatchCase(tc.replacement, tc.observed))
	}
}
