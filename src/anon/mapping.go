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

	"github.com/queryanonymizer/queryanonymizer/src/dialect"
)

// MappingTable records original→surrogate pairs for one anonymization run.
// It enforces a bijection at insertion time: one original maps to exactly
// one surrogate and no two originals share a surrogate. Originals are keyed
// case-insensitively, so Order_ID and order_id land on the same entry.
//
// The table is local to a single Anonymize call and is not safe for
// concurrent use; the engine holds no state between calls.
type MappingTable struct {
	keywords dialect.KeywordSet

	// canonical (upper-cased) original -> surrogate in canonical form
	entries map[string]string
	// first-seen spelling of each original, keyed like entries; this is
	// what the decoding dictionary hands back
	firstSeen map[string]string
	// canonical surrogates already handed out
	surrogates map[string]bool
	// canonical originals, so a surrogate never shadows a value that may
	// still appear verbatim in the output
	originals map[string]bool
}

func NewMappingTable(keywords dialect.KeywordSet) *MappingTable {
	return &MappingTable{
		keywords:   keywords,
		entries:    make(map[string]string),
		firstSeen:  make(map[string]string),
		surrogates: make(map[string]bool),
		originals:  make(map[string]bool),
	}
}

func canonical(s string) string {
	return strings.ToUpper(s)
}

// Lookup returns the surrogate recorded for original, matching
// case-insensitively.
func (t *MappingTable) Lookup(original string) (string, bool) {
	surrogate, ok := t.entries[canonical(original)]
	return surrogate, ok
}

func (t *MappingTable) Len() int {
	return len(t.entries)
}

// Available reports whether surrogate may still be handed out: it must not
// repeat an existing surrogate, collide with a reserved word, or shadow an
// original value seen in this run.
func (t *MappingTable) Available(surrogate string) bool {
	key := canonical(surrogate)
	if t.surrogates[key] || t.originals[key] {
		return false
	}
	if t.keywords.Contains(surrogate) || t.keywords.Contains(identifierBody(surrogate)) {
		return false
	}
	return true
}

// Insert records a new pair, rejecting anything that would break the
// bijection.
func (t *MappingTable) Insert(original, surrogate string) error {
	origKey := canonical(original)
	surrKey := canonical(surrogate)
	if existing, ok := t.entries[origKey]; ok {
		if canonical(existing) == surrKey {
			return nil // same pair, nothing to do
		}
		return fmt.Errorf("original %q is already mapped to %q", original, existing)
	}
	if t.surrogates[surrKey] {
		return fmt.Errorf("surrogate %q is already in use", surrogate)
	}
	if origKey == surrKey {
		return fmt.Errorf("surrogate for %q equals the original", original)
	}
	t.entries[origKey] = surrogate
	t.firstSeen[origKey] = original
	t.surrogates[surrKey] = true
	t.originals[origKey] = true
	return nil
}

// NoteOriginal marks a value that stays in the output unsubstituted (short
// identifiers, toggled-off categories) so no surrogate can collide with it.
func (t *MappingTable) NoteOriginal(original string) {
	t.originals[canonical(original)] = true
}

// DecodingDictionary exports the table inverted: surrogate → first-seen
// original spelling. This is the value handed to the caller and later
// consumed wholesale by Deanonymize.
func (t *MappingTable) DecodingDictionary() map[string]string {
	dict := make(map[string]string, len(t.entries))
	for origKey, surrogate := range t.entries {
		dict[surrogate] = t.firstSeen[origKey]
	}
	return dict
}
