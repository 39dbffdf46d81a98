package batch_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tsawler/reportkit/batch"
	"github.com/tsawler/reportkit/config"
	"github.com/tsawler/reportkit/internal/docxtest"
	"github.com/tsawler/reportkit/pipeline"
)

func TestWatcher(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	results := make(chan batch.Result, 4)
	w, err := batch.NewWatcher(newRunner(config.Default()), dir, pipeline.Options{},
		batch.WithDebounce(50*time.Millisecond),
		batch.OnResult(func(r batch.Result) { results <- r }),
	)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	docxtest.File(t, dir, "~$july.docx", docxtest.P("lock"))
	report(t, dir, "july.docx")

	select {
	case res := <-results:
		require.NoError(t, res.Err)
		assert.Equal(t, filepath.Join(dir, "july.docx"), res.Input)
		assert.FileExists(t, filepath.Join(dir, "Processed", "july_modified.docx"))
	case <-time.After(5 * time.Second):
		t.Fatal("document was not processed")
	}

	require.NoError(t, w.Stop())
	select {
	case <-w.Done():
	default:
		t.Fatal("event loop still running after Stop")
	}
	assert.Empty(t, results, "lock file must not be processed")
}

func TestWatcher_ContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	w, err := batch.NewWatcher(newRunner(config.Default()), t.TempDir(), pipeline.Options{})
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))

	cancel()
	select {
	case <-w.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not exit on cancel")
	}
	require.NoError(t, w.Stop())
}

func TestWatcher_MissingFolder(t *testing.T) {
	w, err := batch.NewWatcher(newRunner(config.Default()), filepath.Join(t.TempDir(), "missing"), pipeline.Options{})
	require.NoError(t, err)
	assert.Error(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
}
