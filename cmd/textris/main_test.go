package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/textris/internal/games/textris"
	"github.com/vovakirdan/textris/internal/storage"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := executeErr(t, args...)
	require.NoError(t, err)
	return out
}

func executeErr(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { flagConfig = "" })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMissingWordListFailsBeforeStarting(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "textris.yaml")
	missing := filepath.Join(dir, "missing.txt")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dictionary:\n  path: "+missing+"\n"), 0o600))

	for _, name := range []string{"play", "menu", "check"} {
		t.Run(name, func(t *testing.T) {
			args := []string{name, "--config", cfgPath}
			if name == "check" {
				args = append(args, "cat")
			}
			_, err := executeErr(t, args...)
			require.Error(t, err)
			assert.ErrorContains(t, err, "missing.txt")
		})
	}
}

func TestCheckCommand(t *testing.T) {
	out := execute(t, "check", "CAT", "xyzzy")

	assert.Regexp(t, `CAT\s+valid`, out)
	assert.Regexp(t, `xyzzy\s+not a word`, out)
}

func TestWordlistCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.txt")
	outPath := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(in, []byte("cat\nCat\nbe\nzebra\nzebras\ncat\nno-go\nbean\n"), 0o600))

	execute(t, "wordlist", in, "-o", outPath)
	flagWordlistOut = ""

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "zebra", "bean"}, strings.Fields(string(data)))
}

func TestScoresCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(db)
	require.NoError(t, err)
	_, err = store.SaveScore(textris.GameID, "ann", 120)
	require.NoError(t, err)
	_, err = store.SaveScore(textris.GameID, "bob", 60)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	out := execute(t, "scores", "--db", db)
	assert.Contains(t, out, "Top 5")
	assert.Regexp(t, `1\s+ann\s+120`, out)
	assert.Regexp(t, `2\s+bob\s+60`, out)
}

func TestSimulateCommand(t *testing.T) {
	out := execute(t, "simulate", "--seed", "3", "--ticks", "40", "--interval", "1ms")
	flagTicks, flagSeed = 0, 0

	assert.Contains(t, out, "Score:")
	assert.Contains(t, out, "Ticks:")
}
