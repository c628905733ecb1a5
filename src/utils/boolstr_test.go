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
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolStrSet(t *testing.T) {
	trues := []string{"true", "TRUE", "1", "t", "y", "yes", "Yes"}
	falses := []string{"false", "FALSE", "0", "f", "n", "no", "No"}

	for _, s := range trues {
		var b BoolStr
		require.NoError(t, b.Set(s), "value %q", s)
		assert.True(t, bool(b), "value %q", s)
	}
	for _, s := range falses {
		b := BoolStr(true)
		require.NoError(t, b.Set(s), "value %q", s)
		assert.False(t, bool(b), "value %q", s)
	}
}

func TestBoolStrSetInvalid(t *testing.T) {
	var b BoolStr
	for _, s := range []string{"", "maybe", "2", "truee"} {
		assert.ErrorContains(t, b.Set(s), "invalid boolean value", "value %q", s)
	}
}

func TestBoolStrString(t *testing.T) {
	b := BoolStr(true)
	assert.Equal(t, "true", b.String())
	b = false
	assert.Equal(t, "false", b.String())
	assert.Equal(t, "boolean", b.Type())
}
