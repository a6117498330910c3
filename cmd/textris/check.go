package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <word>...",
	Short: "Look words up in the dictionary",
	Long: `Report whether each word is in the active dictionary. Lookups
ignore case. The dictionary comes from the config's dictionary.path, or the
built-in list.

Examples:
  textris check bean
  textris check CAT zebra xyzzy`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, dict, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, word := range args {
		verdict := "not a word"
		if dict.IsValid(word) {
			verdict = "valid"
		}
		fmt.Fprintf(out, "%-12s %s\n", word, verdict)
	}
	logger.Debug("dictionary checked", "words", dict.Len(), "queries", len(args))
	return nil
}
