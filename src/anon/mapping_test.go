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
	"github.com/stretchr/testify/require"
)

func TestMappingTableBijection(t *testing.T) {
	table := NewMappingTable(sqlKeywords(t))

	require.NoError(t, table.Insert("customer", "vapoti"))

	// one original, one surrogate
	err := table.Insert("customer", "bemusa")
	assert.ErrorContains(t, err, "already mapped")

	// re-inserting the identical pair is a no-op
	assert.NoError(t, table.Insert("Customer", "Vapoti"))
	assert.Equal(t, 1, table.Len())

	// no two originals share a surrogate
	err = table.Insert("orders", "vapoti")
	assert.ErrorContains(t, err, "already in use")

	// a surrogate equal to its own original is useless
	err = table.Insert("orders", "ORDERS")
	assert.ErrorContains(t, err, "equals the original")
}

func TestMappingTableCaseInsensitiveLookup(t *testing.T) {
	table := NewMappingTable(sqlKeywords(t))
	require.NoError(t, table.Insert("Order_ID", "bemus_at"))

	for _, spelling := range []string{"Order_ID", "order_id", "ORDER_ID"} {
		surrogate, ok := table.Lookup(spelling)
		require.True(t, ok, "lookup %q", spelling)
		assert.Equal(t, "bemus_at", surrogate)
	}

	_, ok := table.Lookup("order_date")
	assert.False(t, ok)
}

func TestMappingTableAvailable(t *testing.T) {
	table := NewMappingTable(sqlKeywords(t))
	require.NoError(t, table.Insert("customer", "vapoti"))
	table.NoteOriginal("id")

	tests := []struct {
		surrogate string
		available bool
	}{
		{"bemusa", true},
		{"vapoti", false}, // already handed out
		{"VAPOTI", false},
		{"customer", false}, // shadows an original
		{"id", false},       // shadows a pass-through value
		{"select", false},   // reserved word
		{"[select]", false}, // bracket quoting does not rescue a keyword
	}
	for _, tc := range tests {
		assert.Equal(t, tc.available, table.Available(tc.surrogate), "surrogate %q", tc.surrogate)
	}
}

func TestDecodingDictionaryKeepsFirstSpelling(t *testing.T) {
	table := NewMappingTable(sqlKeywords(t))
	require.NoError(t, table.Insert("Order_ID", "bemus_at"))
	require.NoError(t, table.Insert("customer", "vapoti"))

	dict := table.DecodingDictionary()
	assert.Equal(t, map[string]string{
		"bemus_at": "Order_ID",
		"vapoti":   "customer",
	}, dict)
}
