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
	"os"
	"strings"
)

// DoNotPrompt makes AskPrompt assume "yes" everywhere (--yes flag).
var DoNotPrompt bool

func FileOrFolderExists(path string) bool {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false
		}
		panic(err)
	}
	return true
}

// AskPrompt asks a [Y/N] question on stdout and reads the answer from stdin.
func AskPrompt(args ...string) bool {
	if DoNotPrompt {
		return true
	}
	fmt.Printf("%s? [Y/N]: ", strings.Join(args, " "))

	var input string
	_, err := fmt.Scan(&input)
	if err != nil {
		panic(err)
	}

	input = strings.ToUpper(strings.TrimSpace(input))
	return input == "Y" || input == "YES"
}
