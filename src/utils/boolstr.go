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
	"fmt"
	"strings"
)

// BoolStr is a bool flag that must be set explicitly as true/false (also
// accepts 1/0, t/f, y/n, yes/no), used for the per-category anonymization
// toggles where a bare presence flag would be ambiguous.
type BoolStr bool

func (b *BoolStr) Set(s string) error {
	s = strings.ToLower(s)
	t := BoolStr(s == "true" || s == "1" || s == "t" || s == "y" || s == "yes")
	if !t {
		f := BoolStr(s == "false" || s == "0" || s == "f" || s == "n" || s == "no")
		if !f {
			return fmt.Errorf("invalid boolean value: %q (valid values: true, false)", s)
		}
	}
	*b = t
	return nil
}

func (b *BoolStr) Type() string {
	return "boolean"
}

func (b *BoolStr) String() string {
	if *b {
		return "true"
	}
	return "false"
}
