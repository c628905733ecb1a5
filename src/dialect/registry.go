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
package dialect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// KeywordSet is an immutable, case-insensitive set of reserved words for one
// dialect. All lookups and merges upper-case their input, so "Select",
// "SELECT" and "select" are the same member. A KeywordSet is never mutated
// after construction which makes it safe for concurrent readers.
type KeywordSet struct {
	words map[string]bool
}

func NewKeywordSet(words ...string) KeywordSet {
	s := KeywordSet{words: make(map[string]bool, len(words))}
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" {
			s.words[w] = true
		}
	}
	return s
}

// Contains reports whether word is a reserved word, ignoring case.
func (s KeywordSet) Contains(word string) bool {
	return s.words[strings.ToUpper(word)]
}

func (s KeywordSet) Size() int {
	return len(s.words)
}

// Words returns the members of the set in sorted order.
func (s KeywordSet) Words() []string {
	words := lo.Keys(s.words)
	sort.Strings(words)
	return words
}

// Merge returns a new KeywordSet containing the union of s and extra.
// The receiver is left untouched.
func (s KeywordSet) Merge(extra ...string) KeywordSet {
	merged := NewKeywordSet(extra...)
	for w := range s.words {
		merged.words[w] = true
	}
	return merged
}

// UnknownDialectError is returned when a dialect name is not present in the
// registry. Anonymization aborts before any tokens are processed.
type UnknownDialectError struct {
	Dialect string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q (supported: %s)", e.Dialect, strings.Join(Names(), ", "))
}

// registry maps an upper-cased dialect name to its keyword set. Built once at
// package init from the tables in keywords.go and read-only afterwards.
var registry = map[string]KeywordSet{
	CustomOnly: NewKeywordSet(),
	SQL:        NewKeywordSet(sqlKeywords...),
	TSQL:       NewKeywordSet(sqlKeywords...).Merge(tsqlKeywords...),
	MySQL:      NewKeywordSet(sqlKeywords...).Merge(mysqlKeywords...),
	PLSQL:      NewKeywordSet(sqlKeywords...).Merge(plsqlKeywords...),
	DAX:        NewKeywordSet(daxKeywords...),
}

// Supported dialect names. CustomOnly has an empty base set and is meant to
// be combined with caller-supplied custom keywords.
const (
	SQL        = "SQL"
	TSQL       = "TSQL"
	MySQL      = "MYSQL"
	PLSQL      = "PLSQL"
	DAX        = "DAX"
	CustomOnly = "CUSTOM_ONLY"
)

// Lookup returns the keyword set for the named dialect.
func Lookup(name string) (KeywordSet, error) {
	set, ok := registry[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return KeywordSet{}, &UnknownDialectError{Dialect: name}
	}
	return set, nil
}

// Names returns the supported dialect names in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}
