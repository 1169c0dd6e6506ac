package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/render"
)

// testConfig writes a config with console logging off and a private sqlite
// file, and returns its path.
func testConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "lvmaze.yaml")
	content := fmt.Sprintf(`logging:
  console_enabled: false
store:
  driver: sqlite
  sqlite_path: %s
`, filepath.Join(dir, "runs.db"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_GenerateVerifyExport(t *testing.T) {
	cfg := testConfig(t)
	out := filepath.Join(t.TempDir(), "maze.yaml")

	code, stdout, stderr := runCmd(t, "-config", cfg, "-level", "hard", "-seed", "42", "-verify", "-out", out)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "level=hard size=51x25 algorithm=edge-selection strategy=corner-to-corner seed=42")
	assert.Contains(t, stdout, "entrance=(1,1) exit=(49,23)")
	assert.Contains(t, stdout, "perfect: ok")
	assert.Contains(t, stdout, "Maze written to "+out)

	lines := strings.Split(stdout, "\n")
	assert.Equal(t, strings.Repeat("#", 51), lines[0])
	assert.Equal(t, "#"+string(EntranceRune), lines[1][:2])

	code, stdout, stderr = runCmd(t, "-config", cfg, "-in", out, "-verify")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "seed=42")
	assert.Contains(t, stdout, "perfect: ok")
}

func TestRun_PNG(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "maze.yaml")
	img := filepath.Join(dir, "maze.png")

	code, stdout, stderr := runCmd(t, "-config", cfg, "-level", "easy", "-strategy", "corner-to-corner", "-seed", "5", "-out", out, "-png", img)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Image written to "+img)
	first, err := os.ReadFile(img)
	require.NoError(t, err)

	code, _, stderr = runCmd(t, "-config", cfg, "-in", out, "-png", img, "-solution")
	require.Equal(t, 0, code, stderr)
	second, err := os.ReadFile(img)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "route shading changes the image")

	decoded, err := png.Decode(bytes.NewReader(second))
	require.NoError(t, err)
	assert.Equal(t, 31*render.DefaultCellPixels, decoded.Bounds().Dx())
	assert.Equal(t, 15*render.DefaultCellPixels, decoded.Bounds().Dy())
}

func TestRun_SameSeedSameMaze(t *testing.T) {
	cfg := testConfig(t)
	args := []string{"-config", cfg, "-width", "21", "-height", "11", "-algorithm", "frontier_growth", "-seed", "7"}

	code, first, _ := runCmd(t, args...)
	require.Equal(t, 0, code)
	code, second, _ := runCmd(t, args...)
	require.Equal(t, 0, code)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "size=21x11 algorithm=frontier-growth")
}

func TestRun_PlayRecordBest(t *testing.T) {
	cfg := testConfig(t)

	code, stdout, stderr := runCmd(t, "-config", cfg, "-level", "easy", "-seed", "3", "-play", "-db")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "won=true accuracy=100.0%")
	assert.Contains(t, stdout, "Run 1 recorded")

	code, stdout, stderr = runCmd(t, "-config", cfg, "-level", "easy", "-best", "5")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "100.0%")
	assert.Contains(t, stdout, "easy")

	code, stdout, stderr = runCmd(t, "-config", cfg, "-level", "EASY", "-best", "5")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "100.0%", "level names resolve through the table")

	code, stdout, _ = runCmd(t, "-config", cfg, "-level", "very_hard", "-best", "5")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "No won runs recorded for very-hard")

	code, _, stderr = runCmd(t, "-config", cfg, "-level", "nightmare", "-best", "5")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown level")

	code, stdout, _ = runCmd(t, "-config", cfg, "-level", "hard", "-best", "5")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "No won runs recorded for hard")
}

func TestRun_ListAndWriteConfig(t *testing.T) {
	cfg := testConfig(t)

	code, stdout, _ := runCmd(t, "-config", cfg, "-list")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "very-hard")
	assert.Contains(t, stdout, "61x31")

	dump := filepath.Join(t.TempDir(), "dump.yaml")
	code, _, stderr := runCmd(t, "-config", cfg, "-write-config", dump)
	require.Equal(t, 0, code, stderr)
	code, _, stderr = runCmd(t, "-config", dump, "-list")
	assert.Equal(t, 0, code, stderr)
}

func TestRun_Errors(t *testing.T) {
	cfg := testConfig(t)

	code, _, stderr := runCmd(t, "-config", cfg, "-level", "nightmare")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown level")

	code, _, _ = runCmd(t, "-config", cfg, "-algorithm", "wilson")
	assert.Equal(t, 1, code)

	code, _, _ = runCmd(t, "-config", cfg, "-width", "3")
	assert.Equal(t, 1, code)

	code, _, _ = runCmd(t, "-config", cfg, "-in", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)

	code, _, _ = runCmd(t, "-no-such-flag")
	assert.Equal(t, 2, code)
}
