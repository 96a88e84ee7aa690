package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/leettrack/internal/storage"
	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `categories:
  - id: arrays
    name: Arrays
    items:
      - {id: a1, name: Two Sum, difficulty: Easy}
      - {id: a2, name: 3Sum, difficulty: Medium}
  - id: graphs
    name: Graphs
    items:
      - {id: g1, name: Number of Islands, difficulty: Medium}
      - {id: g2, name: Word Ladder, difficulty: Hard}
`

type cliEnv struct {
	catalog string
	state   string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogYAML), 0o644))
	return cliEnv{catalog: path, state: filepath.Join(dir, "slots")}
}

func (e cliEnv) run(t *testing.T, stdin string, interactive bool, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	a := newApp(streams{
		in:          strings.NewReader(stdin),
		out:         &out,
		errOut:      &errOut,
		interactive: func() bool { return interactive },
	})
	base := []string{"--catalog", e.catalog, "--backend", "file", "--state", e.state}
	err := a.execute(append(base, args...))
	return out.String(), errOut.String(), err
}

func TestStatsOnFreshState(t *testing.T) {
	env := newCLIEnv(t)
	out, _, err := env.run(t, "", false, "stats")
	require.NoError(t, err)
	require.Contains(t, out, "Overall: 0/4 (0.0%)")
	require.Contains(t, out, "[A] Arrays")
	require.Contains(t, out, "Hard")
	require.NotContains(t, out, "not in the catalog")
	require.Contains(t, out, "Last saved: never")

	_, _, err = env.run(t, "", false, "toggle", "a1")
	require.NoError(t, err)
	out, _, err = env.run(t, "", false, "stats")
	require.NoError(t, err)
	require.Contains(t, out, "Last saved: ")
	require.NotContains(t, out, "Last saved: never")
}

func TestToggleAndMarkPersistAcrossRuns(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run(t, "", false, "toggle", "two", "sum")
	require.NoError(t, err)
	require.Equal(t, "done: Two Sum\n", out)

	out, _, err = env.run(t, "", false, "done", "graphs")
	require.NoError(t, err)
	require.Equal(t, "done: Graphs (2 problems)\n", out)

	out, _, err = env.run(t, "", false, "stats")
	require.NoError(t, err)
	require.Contains(t, out, "Overall: 3/4 (75.0%)")
	require.Contains(t, out, "[✓] Graphs")

	out, _, err = env.run(t, "", false, "undone", "Graphs")
	require.NoError(t, err)
	require.Contains(t, out, "undone: Graphs")

	out, _, err = env.run(t, "", false, "toggle", "a1")
	require.NoError(t, err)
	require.Equal(t, "not done: Two Sum\n", out)

	out, _, err = env.run(t, "", false, "stats")
	require.NoError(t, err)
	require.Contains(t, out, "Overall: 0/4 (0.0%)")
}

func TestToggleUnknownItemFails(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run(t, "", false, "toggle", "qqqqqq")
	require.Error(t, err)
}

func TestListFilters(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run(t, "", false, "toggle", "a1")
	require.NoError(t, err)

	out, _, err := env.run(t, "", false, "list", "--status", "done")
	require.NoError(t, err)
	require.Contains(t, out, "Two Sum")
	require.NotContains(t, out, "3Sum")
	require.NotContains(t, out, "Graphs")
	require.Contains(t, out, "showing 1 of 4 problems")

	out, _, err = env.run(t, "", false, "list")
	require.NoError(t, err)
	require.Contains(t, out, "Word Ladder")
	require.NotContains(t, out, "showing")

	out, _, err = env.run(t, "", false, "list", "--difficulty", "hard")
	require.NoError(t, err)
	require.Contains(t, out, "Word Ladder")
	require.NotContains(t, out, "Arrays")

	out, _, err = env.run(t, "", false, "list", "--search", "ISLANDS")
	require.NoError(t, err)
	require.Contains(t, out, "Number of Islands")
	require.NotContains(t, out, "Word Ladder")

	out, _, err = env.run(t, "", false, "list", "--search", "nothing-like-this")
	require.NoError(t, err)
	require.Equal(t, "no items match the current filters\n", out)

	_, _, err = env.run(t, "", false, "list", "--difficulty", "impossible")
	require.Error(t, err)
}

func TestResetConfirmation(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run(t, "", false, "done", "arrays")
	require.NoError(t, err)

	_, _, err = env.run(t, "", false, "reset")
	require.ErrorContains(t, err, "--yes")

	out, _, err := env.run(t, "n\n", true, "reset")
	require.NoError(t, err)
	require.Contains(t, out, "Are you sure you want to reset all progress? [y/N]")
	require.Contains(t, out, "reset cancelled")

	out, _, err = env.run(t, "", false, "stats")
	require.NoError(t, err)
	require.Contains(t, out, "Overall: 2/4")

	out, _, err = env.run(t, "y\n", true, "reset")
	require.NoError(t, err)
	require.Contains(t, out, "progress reset")

	_, _, err = env.run(t, "", false, "done", "arrays")
	require.NoError(t, err)
	out, _, err = env.run(t, "", false, "reset", "--yes")
	require.NoError(t, err)
	require.Equal(t, "progress reset\n", out)

	out, _, err = env.run(t, "", false, "stats")
	require.NoError(t, err)
	require.Contains(t, out, "Overall: 0/4")
}

func TestReportRaw(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run(t, "", false, "done", "arrays")
	require.NoError(t, err)

	out, _, err := env.run(t, "", false, "report", "--raw")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "# LeetCode Progress"))
	require.Contains(t, out, "**2 / 4** completed (50.0%)")

	out, _, err = env.run(t, "", false, "report", "--style", "notty")
	require.NoError(t, err)
	require.Contains(t, out, "LeetCode Progress")
}

func TestOrphanIDsAreReported(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.MkdirAll(env.state, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.state, "leetcode-progress.json"), []byte(`{"a1":true,"retired":true}`), 0o644))

	out, _, err := env.run(t, "", false, "stats")
	require.NoError(t, err)
	require.Contains(t, out, "Overall: 1/4 (25.0%)")
	require.Contains(t, out, "1 stored ids are not in the catalog")
}

func TestUnknownBackendFails(t *testing.T) {
	env := newCLIEnv(t)
	var out bytes.Buffer
	a := newApp(streams{in: strings.NewReader(""), out: &out, errOut: &out})
	require.ErrorContains(t, a.execute([]string{"--catalog", env.catalog, "--backend", "postgres", "stats"}), "postgres")
}

func TestMissingCatalogFails(t *testing.T) {
	env := newCLIEnv(t)
	env.catalog = filepath.Join(t.TempDir(), "missing.yaml")
	_, _, err := env.run(t, "", false, "stats")
	require.Error(t, err)
}

func TestAmbiguousNamesDoNotChangeProgress(t *testing.T) {
	env := newCLIEnv(t)

	// "s" is in both category names and in three problem names.
	_, _, err := env.run(t, "", false, "done", "s")
	require.ErrorContains(t, err, "Arrays")
	require.ErrorContains(t, err, "Graphs")

	_, _, err = env.run(t, "", false, "toggle", "s")
	require.ErrorContains(t, err, "matches")

	out, _, err := env.run(t, "", false, "stats")
	require.NoError(t, err)
	require.Contains(t, out, "Overall: 0/4 (0.0%)")
	require.Contains(t, out, "Last saved: never")
}

func TestFailingCommandStillReleasesStorage(t *testing.T) {
	env := newCLIEnv(t)
	var out bytes.Buffer
	a := newApp(streams{in: strings.NewReader(""), out: &out, errOut: &out})
	dbPath := filepath.Join(t.TempDir(), "progress.db")

	err := a.execute([]string{"--catalog", env.catalog, "--backend", "sqlite", "--state", dbPath, "toggle", "qqqqqq"})
	require.Error(t, err)
	require.True(t, a.closed)

	_, err = a.slot.Get(context.Background(), "leetcode-progress")
	require.Error(t, err)
	require.NotErrorIs(t, err, storage.ErrNotFound)
}
