package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lotwheel/cover"
	"github.com/katalvlaran/lotwheel/internal/favorites"
	"github.com/katalvlaran/lotwheel/internal/logger"
)

// run executes the CLI in-process and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestGenerate_Text(t *testing.T) {
	out, _, err := run(t, "generate", "--pool", "7,1,2,3,4,5,6", "--k", "6", "--g", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "pool:      1 2 3 4 5 6 7")
	assert.Contains(t, out, "coverage:  100.00%")
	assert.Contains(t, out, "method:    known-design")
	assert.Contains(t, out, "   1: 2 3 4 5 6 7")
	assert.Contains(t, out, "   4: 1 2 3 5 6 7")
}

func TestGenerate_JSON(t *testing.T) {
	out, _, err := run(t, "generate", "--pool", "1,2,3,4,5,6,7,8", "--g", "4", "--json")
	require.NoError(t, err)

	var p cover.Payload
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, 15, p.TotalBets)
	assert.Equal(t, 6, p.BetSize)
	assert.True(t, p.UsedKnownDesign)
	assert.Equal(t, 1.0, p.CoverageFraction)
}

func TestGenerate_DebugLogsDiagnostics(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "generate", "--pool", "1,2,3,4,5,6,7,8,9,10,11", "--k", "10", "--g", "4", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, stderr, "system generated")
	assert.Contains(t, stderr, "method=greedy")
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "generate", "--pool", "1,2,3,4,5,6,7,8,9,10", "--g", "7")
	require.ErrorIs(t, err, cover.ErrInvalidGuarantee)

	_, _, err = run(t, "generate", "--pool", "1,x,3")
	require.Error(t, err)

	_, _, err = run(t, "generate")
	require.Error(t, err, "pool is required")

	_, _, err = run(t, "--log-level", "loud", "designs")
	require.Error(t, err)
}

func TestVerify(t *testing.T) {
	out, _, err := run(t, "verify", "--pool", "1,2,3,4,5", "--g", "2", "--bets", "1,2,3;3,4,5", "--show-missing", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "covered 6 of 10 (60.00%)")
	assert.Contains(t, out, "missing: 1 4\n")
	assert.Contains(t, out, "missing: 1 5\n")
	assert.Equal(t, 2, strings.Count(out, "missing:"))

	_, _, err = run(t, "verify", "--pool", "1,2,3", "--g", "2", "--bets", "1,9")
	require.ErrorIs(t, err, cover.ErrBetOutsidePool)
}

// TestVerify_AuditCeiling: a 40-number pool at g=20 is refused instead of
// enumerating C(40,20) subsets; the config can lower the ceiling further.
func TestVerify_AuditCeiling(t *testing.T) {
	pool := make([]string, 40)
	for i := range pool {
		pool[i] = strconv.Itoa(i + 1)
	}
	_, _, err := run(t, "verify", "--pool", strings.Join(pool, ","), "--g", "20", "--bets", strings.Join(pool[:20], ","))
	require.ErrorIs(t, err, cover.ErrSearchSpaceTooLarge)

	cfg := writeFile(t, "lotwheel.yaml", "engine:\n  max_audit_work: 5\n")
	_, _, err = run(t, "--config", cfg, "verify", "--pool", "1,2,3,4,5", "--g", "2", "--bets", "1,2,3")
	require.ErrorIs(t, err, cover.ErrSearchSpaceTooLarge)
}

// TestSetup_InstallsConfiguredLogger: after a command runs, the package-level
// helpers main uses write to the command's stderr at the configured level.
func TestSetup_InstallsConfiguredLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"--log-level", "warn", "designs"})
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	require.NoError(t, root.Execute())

	logger.Info("below level")
	logger.Error("lotwheel failed", "err", "boom")
	assert.NotContains(t, stderr.String(), "below level")
	assert.Contains(t, stderr.String(), "lotwheel failed")
	assert.Contains(t, stderr.String(), "err=boom")
}

func TestDesigns(t *testing.T) {
	out, _, err := run(t, "designs")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(cover.Designs())+1)
	assert.Contains(t, out, "6-pick")
	assert.Contains(t, out, "5-pick")
}

func TestBatch(t *testing.T) {
	path := writeFile(t, "batch.yaml", `
seed: 9
requests:
  - id: small
    pool: [1, 2, 3, 4, 5, 6, 7]
    k: 6
    g: 3
  - id: broken
    pool: [1, 2, 3, 4, 5, 6, 7, 8, 9, 10]
    k: 6
    g: 7
`)
	out, _, err := run(t, "batch", "--file", path, "--concurrency", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first, second batchLine
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "small", first.ID)
	require.NotNil(t, first.System)
	assert.Equal(t, 4, first.System.TotalBets)
	assert.Equal(t, "broken", second.ID)
	assert.Contains(t, second.Error, "invalid guarantee")
	assert.Nil(t, second.System)
}

func TestFavorites_Flow(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, "lotwheel.yaml", "storage:\n  path: "+filepath.Join(dir, "db")+"\n")

	out, _, err := run(t, "--config", cfg, "generate", "--pool", "1,2,3,4,5,6,7", "--save")
	require.NoError(t, err)
	idx := strings.Index(out, "saved: ")
	require.GreaterOrEqual(t, idx, 0, out)
	id := strings.TrimSpace(out[idx+len("saved: "):])

	out, _, err = run(t, "--config", cfg, "fav", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "4 bets")

	out, _, err = run(t, "--config", cfg, "fav", "show", id)
	require.NoError(t, err)
	var rec favorites.Record
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, rec.System.Numbers)

	_, _, err = run(t, "--config", cfg, "fav", "delete", id)
	require.NoError(t, err)

	_, _, err = run(t, "--config", cfg, "fav", "show", id)
	require.ErrorIs(t, err, favorites.ErrNotFound)
}

func TestParseHelpers(t *testing.T) {
	nums, err := parseNumbers(" 3, 8 ,12")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 8, 12}, nums)

	_, err = parseNumbers(" , ")
	require.Error(t, err)

	bets, err := parseBets("1,2,3; 4,5,6;")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, bets)

	_, err = parseBets(";;")
	require.Error(t, err)
}
