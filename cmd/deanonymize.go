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
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/queryanonymizer/queryanonymizer/src/anon"
	"github.com/queryanonymizer/queryanonymizer/src/utils"
	"github.com/queryanonymizer/queryanonymizer/src/utils/jsonfile"
)

var (
	deanonQueryText      string
	deanonQueryFilePath  string
	deanonDictionaryPath string
	deanonOutputPath     string
	strictMode           bool
)

var deanonymizeCmd = &cobra.Command{
	Use:   "deanonymize",
	Short: "Restore an anonymized query using its decoding dictionary",
	Long: `Restore a previously anonymized query. Tokens found in the decoding
dictionary are replaced by their originals with the token's own casing;
unknown tokens pass through unchanged unless --strict is set.`,

	PreRun: func(cmd *cobra.Command, args []string) {
		if deanonDictionaryPath == "" {
			utils.ErrExit(`ERROR: required flag "dictionary-file" not set`)
		}
	},

	Run: func(cmd *cobra.Command, args []string) {
		runDeanonymize()
	},
}

func init() {
	rootCmd.AddCommand(deanonymizeCmd)

	deanonymizeCmd.Flags().StringVarP(&deanonQueryText, "query", "q", "",
		"anonymized query text (reads stdin when --query and --query-file are absent)")
	deanonymizeCmd.Flags().StringVar(&deanonQueryFilePath, "query-file", "",
		"path to a file containing the anonymized query")
	deanonymizeCmd.Flags().StringVar(&deanonDictionaryPath, "dictionary-file", "",
		"path to the decoding dictionary written by 'anonymize'")
	deanonymizeCmd.Flags().StringVarP(&deanonOutputPath, "output-file", "o", "",
		"write the restored query to this file instead of stdout")
	deanonymizeCmd.Flags().BoolVar(&strictMode, "strict", false,
		"fail when a surrogate-shaped token has no dictionary entry")
}

func runDeanonymize() {
	text := loadQueryText(deanonQueryText, deanonQueryFilePath)

	dict, err := jsonfile.NewJsonFile[decoderDictionary](deanonDictionaryPath).Read()
	if err != nil {
		utils.ErrExit("Failed to read decoding dictionary: %v", err)
	}
	log.Infof("deanonymizing %d bytes with %d dictionary entries (run %s)",
		len(text), len(dict.Entries), dict.RunID)

	result, err := anon.Deanonymize(text, dict.Entries, strictMode)
	if err != nil {
		var notFound *anon.MappingNotFoundError
		if errors.As(err, &notFound) {
			utils.ErrExit("Strict deanonymization failed: %v. "+
				"Re-run without --strict to pass unknown tokens through.", err)
		}
		utils.ErrExit("Failed to deanonymize query: %v", err)
	}

	writeOutput(result.Text, deanonOutputPath, "Restored query")
	printRestoreStats(result.Stats)
}
