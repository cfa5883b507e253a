package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/Samandar-Komilov/voidpdev/content"
	"github.com/Samandar-Komilov/voidpdev/database"
	"github.com/Samandar-Komilov/voidpdev/database/databasetest"
	"github.com/Samandar-Komilov/voidpdev/services"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	setupLogging(map[string]string{"LOG_LEVEL": "DEBUG", "LOG_FORMAT": "console"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	setupLogging(map[string]string{"LOG_LEVEL": "loud"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestNewNormalizer(t *testing.T) {
	n, err := newNormalizer(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, content.FormatMarkdown, n.Format())
	assert.Equal(t, content.DefaultExcerptLength, n.ExcerptLength())

	n, err = newNormalizer(map[string]string{"CONTENT_FORMAT": "html", "EXCERPT_LENGTH": "100"})
	require.NoError(t, err)
	assert.Equal(t, content.FormatHTML, n.Format())
	assert.Equal(t, 100, n.ExcerptLength())

	_, err = newNormalizer(map[string]string{"CONTENT_FORMAT": "rst"})
	assert.ErrorContains(t, err, "CONTENT_FORMAT")
}

func TestNewSanitizer(t *testing.T) {
	assert.NotNil(t, newSanitizer(map[string]string{}))
	assert.Nil(t, newSanitizer(map[string]string{"CONTENT_SANITIZE": "false"}))
}

func useTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	db := databasetest.Open(t)
	previous := openDB
	openDB = func(map[string]string) (*gorm.DB, error) { return db, nil }
	t.Cleanup(func() { openDB = previous })
	t.Setenv("SSM_PARAMETER_PATH", "")
	return db
}

func TestImportCommand(t *testing.T) {
	db := useTestDatabase(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.md"), []byte("---\ntitle: Hello Import\ntags: [go]\n---\nBody text.\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	rootCmd.SetArgs([]string{"import", dir, "--dry-run=false", "--env-file", filepath.Join(dir, "missing.env")})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "hello-import")
	assert.Contains(t, out.String(), "created")

	post, err := database.NewPostRepo(db).FindBySlug(context.Background(), "hello-import")
	require.NoError(t, err)
	assert.Equal(t, "Body text.", post.Excerpt)
	assert.True(t, post.Published)
}

func TestImportCommandDryRun(t *testing.T) {
	db := useTestDatabase(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.md"), []byte("# Hi\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	rootCmd.SetArgs([]string{"import", dir, "--dry-run", "--env-file", filepath.Join(dir, "missing.env")})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "would be created")
	posts, err := database.NewPostRepo(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestMigrateReport(t *testing.T) {
	useTestDatabase(t)
	dir := t.TempDir()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	rootCmd.SetArgs([]string{"migrate", "--report", "--env-file", filepath.Join(dir, "missing.env")})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "posts")
}

func TestServeExitError(t *testing.T) {
	assert.NoError(t, serveExitError(interruptError{signal: syscall.SIGTERM}))
	assert.NoError(t, serveExitError(http.ErrServerClosed))
	assert.NoError(t, serveExitError(fmt.Errorf("listen: %w", http.ErrServerClosed)))

	bind := errors.New("listen tcp :8080: bind: address already in use")
	err := serveExitError(bind)
	require.Error(t, err)
	assert.ErrorIs(t, err, bind)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestPrintImportResults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printImportResults(&out, []services.ImportResult{
		{Path: "hello.md", Slug: "hello", Outcome: services.OutcomeCreated, DryRun: true},
	}))
	assert.Contains(t, out.String(), "hello.md")
	assert.Contains(t, out.String(), "would be created")

	assert.Error(t, printImportResults(failingWriter{}, nil))
}
