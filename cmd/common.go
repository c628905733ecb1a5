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
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	log "github.com/sirupsen/logrus"

	"github.com/queryanonymizer/queryanonymizer/src/anon"
	"github.com/queryanonymizer/queryanonymizer/src/utils"
)

// decoderDictionary is the persisted form of one run's decoding dictionary.
// Entries map each surrogate to the original value. A dictionary is
// self-contained per run and is never merged with another run's.
type decoderDictionary struct {
	RunID     string            `json:"run_id"`
	CreatedAt time.Time         `json:"created_at"`
	Dialect   string            `json:"dialect"`
	Entries   map[string]string `json:"entries"`
}

// loadQueryText resolves the query input: inline flag first, then file,
// then stdin.
func loadQueryText(inline, filePath string) string {
	if inline != "" {
		return inline
	}
	if filePath != "" {
		bs, err := os.ReadFile(filePath)
		if err != nil {
			utils.ErrExit("Failed to read query file %q: %v", filePath, err)
		}
		return string(bs)
	}
	bs, err := io.ReadAll(os.Stdin)
	if err != nil {
		utils.ErrExit("Failed to read query from stdin: %v", err)
	}
	return string(bs)
}

// writeOutput writes text to outPath, prompting before overwriting an
// existing file. With an empty outPath the text goes to stdout.
func writeOutput(text, outPath, label string) {
	if outPath == "" {
		fmt.Println(text)
		return
	}
	if utils.FileOrFolderExists(outPath) {
		proceed := utils.AskPrompt(fmt.Sprintf("File %q already exists. Overwrite", outPath))
		if !proceed {
			utils.ErrExit("Aborted. %s not written.", label)
		}
	}
	err := os.WriteFile(outPath, []byte(text), 0644)
	if err != nil {
		utils.ErrExit("Failed to write %s to %q: %v", label, outPath, err)
	}
	utils.PrintAndLog("%s written to %q", label, outPath)
}

func printAnonymizeStats(stats anon.Stats) {
	table := uitable.New()
	table.AddRow("CATEGORY", "SUBSTITUTED")
	table.AddRow("identifiers", stats.Identifiers)
	table.AddRow("strings", stats.Strings)
	table.AddRow("numbers", stats.Numbers)
	table.AddRow("dates", stats.Dates)
	for reason, count := range stats.Skipped {
		table.AddRow("skipped: "+reason, count)
	}
	fmt.Fprintln(os.Stderr, table)
	fmt.Fprintln(os.Stderr, color.GreenString("Substituted %d of %d tokens.",
		stats.Substituted(), stats.TotalTokens))
	log.Infof("anonymize stats: %+v", stats)
}

func printRestoreStats(stats anon.RestoreStats) {
	table := uitable.New()
	table.AddRow("RESULT", "TOKENS")
	table.AddRow("restored", stats.Restored)
	table.AddRow("passed through", stats.Passed)
	table.AddRow("unresolved", stats.Unresolved)
	fmt.Fprintln(os.Stderr, table)
	if stats.Unresolved > 0 {
		fmt.Fprintln(os.Stderr, color.YellowString("%d tokens looked like surrogates but had no dictionary entry.",
			stats.Unresolved))
	}
	fmt.Fprintln(os.Stderr, color.GreenString("Restored %d of %d tokens.",
		stats.Restored, stats.TotalTokens))
	log.Infof("deanonymize stats: %+v", stats)
}

// splitCommaList turns a comma-separated flag value into trimmed entries.
func splitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
