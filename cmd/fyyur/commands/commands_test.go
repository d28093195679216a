package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cesargomez89/fyyur/internal/app"
	"github.com/cesargomez89/fyyur/internal/domain"
)

func init() {
	color.NoColor = true
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

// useTempDB points the commands at a fresh SQLite file with no cache or
// broker configured.
func useTempDB(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(dir, "fyyur.db"))
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("AMQP_URL", "")
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func TestRoot_ShowsHelpWithoutSubcommand(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "seed")
}

func TestRoot_RejectsUnknownFlags(t *testing.T) {
	_, err := execute(t, "--venue", "x")
	assert.Error(t, err)
}

func TestMigrate_CreatesDatabase(t *testing.T) {
	dir := useTempDB(t)

	out, err := execute(t, "migrate", "--env-file", filepath.Join(dir, "absent.env"))
	require.NoError(t, err)
	assert.Contains(t, out, "schema applied (sqlite)")
	assert.FileExists(t, filepath.Join(dir, "fyyur.db"))
}

func TestMigrate_InvalidConfig(t *testing.T) {
	useTempDB(t)
	t.Setenv("DB_DRIVER", "oracle")

	_, err := execute(t, "migrate")
	assert.Error(t, err)
}

func TestSeedThenAreas(t *testing.T) {
	dir := useTempDB(t)
	fixtures := filepath.Join(dir, "fixtures.yaml")
	require.NoError(t, os.WriteFile(fixtures, []byte(`
venues:
  - name: The Musical Hop
    city: San Francisco
    state: CA
    address: 1015 Folsom Street
artists:
  - name: Guns N Petals
    city: San Francisco
    state: CA
    availability:
      - start_time: "2099-01-01 00:00:00"
        end_time: "2099-01-31 00:00:00"
shows:
  - venue: The Musical Hop
    artist: Guns N Petals
    start_time: "2099-01-10 20:00:00"
  - venue: The Musical Hop
    artist: Guns N Petals
    start_time: "2099-03-10 20:00:00"
`), 0o644))

	out, err := execute(t, "seed", "--file", fixtures)
	require.NoError(t, err)
	assert.Contains(t, out, "1 venues, 1 artists")
	assert.Contains(t, out, "1 shows booked")
	assert.Contains(t, out, "rejected: Guns N Petals at The Musical Hop on 2099-03-10 20:00:00")

	out, err = execute(t, "areas")
	require.NoError(t, err)
	assert.Contains(t, out, "San Francisco, CA")
	assert.Contains(t, out, "The Musical Hop")
	assert.Contains(t, out, "(1 upcoming)")
}

func TestSeed_MissingFile(t *testing.T) {
	useTempDB(t)
	_, err := execute(t, "seed", "--file", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestPrintAreas(t *testing.T) {
	var buf bytes.Buffer
	printAreas(&buf, nil)
	assert.Equal(t, "No venues listed.\n", buf.String())

	buf.Reset()
	printAreas(&buf, []app.Area{{
		City:  "New York",
		State: "NY",
		Venues: []domain.Listing{
			{ID: 2, Name: "The Dueling Pianos Bar"},
			{ID: 3, Name: "Park Square", NumUpcomingShows: 2},
		},
	}})
	assert.Equal(t, "New York, NY\n  2    The Dueling Pianos Bar\n  3    Park Square  (2 upcoming)\n", buf.String())
}
