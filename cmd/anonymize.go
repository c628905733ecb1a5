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
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/queryanonymizer/queryanonymizer/src/anon"
	"github.com/queryanonymizer/queryanonymizer/src/utils"
	"github.com/queryanonymizer/queryanonymizer/src/utils/jsonfile"
)

var (
	queryText          string
	queryFilePath      string
	dialectName        string
	customKeywords     string
	customKeywordsFile string
	customTokens       string
	customTokensFile   string
	minWordLength      int
	outputFilePath     string
	dictionaryFilePath string
	seedDictionaryPath string

	anonymizeIdentifiers utils.BoolStr = true
	anonymizeStrings     utils.BoolStr = true
	anonymizeNumbers     utils.BoolStr = true
	anonymizeDates       utils.BoolStr = true
)

var anonymizeCmd = &cobra.Command{
	Use:   "anonymize",
	Short: "Anonymize a query and emit the decoding dictionary",
	Long: `Anonymize a query read from --query, --query-file or stdin. Keywords of the
selected dialect stay untouched; everything substituted is recorded in a
decoding dictionary required to restore the original text with 'deanonymize'.`,

	Run: func(cmd *cobra.Command, args []string) {
		runAnonymize()
	},
}

func init() {
	rootCmd.AddCommand(anonymizeCmd)

	anonymizeCmd.Flags().StringVarP(&queryText, "query", "q", "",
		"query text to anonymize (reads stdin when --query and --query-file are absent)")
	anonymizeCmd.Flags().StringVar(&queryFilePath, "query-file", "",
		"path to a file containing the query to anonymize")
	anonymizeCmd.Flags().StringVarP(&dialectName, "dialect", "d", "SQL",
		"keyword dialect: SQL, TSQL, MYSQL, PLSQL, DAX or CUSTOM_ONLY")
	anonymizeCmd.Flags().StringVar(&customKeywords, "custom-keywords", "",
		"comma-separated keywords to protect in addition to the dialect's set")
	anonymizeCmd.Flags().StringVar(&customKeywordsFile, "custom-keywords-file", "",
		"path to a JSON array of custom keywords")
	anonymizeCmd.Flags().StringVar(&customTokens, "custom-tokens", "",
		"comma-separated values to always anonymize, even keywords and short identifiers")
	anonymizeCmd.Flags().StringVar(&customTokensFile, "custom-tokens-file", "",
		"path to a JSON array of custom tokens")
	anonymizeCmd.Flags().IntVar(&minWordLength, "min-word-length", anon.DefaultMinWordLength,
		"identifiers shorter than this are never substituted")
	anonymizeCmd.Flags().StringVarP(&outputFilePath, "output-file", "o", "",
		"write the anonymized query to this file instead of stdout")
	anonymizeCmd.Flags().StringVar(&dictionaryFilePath, "dictionary-file", "decoder_dictionary.json",
		"where to write the decoding dictionary")
	anonymizeCmd.Flags().StringVar(&seedDictionaryPath, "seed-dictionary-file", "",
		"path to a JSON object of preassigned original->surrogate pairs")

	anonymizeCmd.Flags().Var(&anonymizeIdentifiers, "identifiers",
		"anonymize identifiers (true/false)")
	anonymizeCmd.Flags().Var(&anonymizeStrings, "strings",
		"anonymize quoted string literals (true/false)")
	anonymizeCmd.Flags().Var(&anonymizeNumbers, "numbers",
		"anonymize numeric literals (true/false)")
	anonymizeCmd.Flags().Var(&anonymizeDates, "dates",
		"anonymize date and datetime literals (true/false)")

	viper.BindPFlag("dialect", anonymizeCmd.Flags().Lookup("dialect"))
	viper.BindPFlag("min-word-length", anonymizeCmd.Flags().Lookup("min-word-length"))
}

func runAnonymize() {
	text := loadQueryText(queryText, queryFilePath)

	cfg := anon.Config{
		Dialect:              viper.GetString("dialect"),
		CustomKeywords:       splitCommaList(customKeywords),
		CustomTokens:         splitCommaList(customTokens),
		MinWordLength:        viper.GetInt("min-word-length"),
		AnonymizeIdentifiers: bool(anonymizeIdentifiers),
		AnonymizeStrings:     bool(anonymizeStrings),
		AnonymizeNumbers:     bool(anonymizeNumbers),
		AnonymizeDates:       bool(anonymizeDates),
	}

	if customKeywordsFile != "" {
		words, err := jsonfile.NewJsonFile[[]string](customKeywordsFile).Read()
		if err != nil {
			utils.ErrExit("Failed to read custom keywords file: %v", err)
		}
		cfg.CustomKeywords = append(cfg.CustomKeywords, *words...)
	}
	if customTokensFile != "" {
		tokens, err := jsonfile.NewJsonFile[[]string](customTokensFile).Read()
		if err != nil {
			utils.ErrExit("Failed to read custom tokens file: %v", err)
		}
		cfg.CustomTokens = append(cfg.CustomTokens, *tokens...)
	}
	if seedDictionaryPath != "" {
		seed, err := jsonfile.NewJsonFile[map[string]string](seedDictionaryPath).Read()
		if err != nil {
			utils.ErrExit("Failed to read seed dictionary file: %v", err)
		}
		cfg.SeedDictionary = *seed
	}

	log.Infof("anonymizing %d bytes with dialect=%s min-word-length=%d",
		len(text), cfg.Dialect, cfg.MinWordLength)
	result, err := anon.Anonymize(text, cfg)
	if err != nil {
		utils.ErrExit("Failed to anonymize query: %v", err)
	}

	writeOutput(result.Text, outputFilePath, "Anonymized query")

	dict := &decoderDictionary{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Dialect:   cfg.Dialect,
		Entries:   result.DecodingDictionary,
	}
	err = jsonfile.NewJsonFile[decoderDictionary](dictionaryFilePath).Write(dict)
	if err != nil {
		utils.ErrExit("Failed to write decoding dictionary: %v", err)
	}
	utils.PrintAndLog("Decoding dictionary with %d entries written to %q",
		len(dict.Entries), dictionaryFilePath)

	printAnonymizeStats(result.Stats)
}
