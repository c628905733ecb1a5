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
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/queryanonymizer/queryanonymizer/src/dialect"
	"github.com/queryanonymizer/queryanonymizer/src/utils"
)

var (
	keywordsDialect string
	keywordsCustom  string
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the keyword set of a dialect",
	Long: `List the reserved words the anonymizer will never substitute for the given
dialect, optionally merged with custom keywords.`,

	Run: func(cmd *cobra.Command, args []string) {
		listKeywords()
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)

	keywordsCmd.Flags().StringVarP(&keywordsDialect, "dialect", "d", "SQL",
		"keyword dialect: SQL, TSQL, MYSQL, PLSQL, DAX or CUSTOM_ONLY")
	keywordsCmd.Flags().StringVar(&keywordsCustom, "custom-keywords", "",
		"comma-separated keywords to merge into the listing")
}

const keywordColumns = 4

func listKeywords() {
	set, err := dialect.Lookup(keywordsDialect)
	if err != nil {
		utils.ErrExit("%v", err)
	}
	set = set.Merge(splitCommaList(keywordsCustom)...)

	words := set.Words()
	table := uitable.New()
	for i := 0; i < len(words); i += keywordColumns {
		row := make([]interface{}, 0, keywordColumns)
		for j := i; j < i+keywordColumns && j < len(words); j++ {
			row = append(row, words[j])
		}
		table.AddRow(row...)
	}
	fmt.Println(table)
	fmt.Fprintln(os.Stderr, color.GreenString("%d keywords in dialect %s.", set.Size(), keywordsDialect))
}
