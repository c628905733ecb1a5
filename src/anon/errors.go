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

import "fmt"

// SurrogateCollisionExhaustedError is returned when the generator could not
// find a unique surrogate within the retry budget. This only happens on
// pathological input (many distinct values in a tiny alphabet); the caller
// can retry with a different configuration.
type SurrogateCollisionExhaustedError struct {
	Original string
	Attempts int
}

func (e *SurrogateCollisionExhaustedError) Error() string {
	return fmt.Sprintf("no unique surrogate found for %q after %d attempts", e.Original, e.Attempts)
}

// MappingNotFoundError is returned by strict-mode deanonymization when a
// surrogate-shaped token has no entry in the decoding dictionary.
type MappingNotFoundError struct {
	Token string
}

func (e *MappingNotFoundError) Error() string {
	return fmt.Sprintf("no dictionary entry for token %q", e.Token)
}
