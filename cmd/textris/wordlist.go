package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/textris/internal/dictionary"
)

var flagWordlistOut string

var wordlistCmd = &cobra.Command{
	Use:   "wordlist <file>",
	Short: "Normalize a word list for use as a dictionary",
	Long: `Read a word list (one word per line, '-' for stdin) and keep only
lowercase alphabetic words of 3 to 5 letters, dropping duplicates. The
result can be used as dictionary.path in the config.

Examples:
  textris wordlist /usr/share/dict/words -o ~/.textris/words.txt
  cat words.txt | textris wordlist -`,
	Args: cobra.ExactArgs(1),
	RunE: runWordlist,
}

func init() {
	wordlistCmd.Flags().StringVarP(&flagWordlistOut, "output", "o", "", "Write to this file instead of stdout")
}

func runWordlist(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	words, err := dictionary.ReadWords(in)
	if err != nil {
		return err
	}
	kept := dictionary.Normalize(words)

	out := cmd.OutOrStdout()
	if flagWordlistOut != "" {
		f, err := os.Create(flagWordlistOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	for _, word := range kept {
		fmt.Fprintln(w, word)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	logger.Info("word list normalized", "read", len(words), "kept", len(kept))
	return nil
}
