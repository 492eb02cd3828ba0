//go:build unit

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()

	// This should not panic or produce any output
	logger.Debugf("debug %s", "value")
	logger.Logf("info %s", "value")
	logger.Warnf("warn %s", "value")
	logger.Errorf("error %s", "value")
}

func TestZerologLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Console: &buf, NoColor: true})
	require.NoError(t, err)

	logger.Debugf("hidden %d", 1)
	logger.Logf("shown %d", 2)
	logger.Warnf("careful %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "careful 3")
}

func TestZerologLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "DEBUG", Console: &buf, NoColor: true})
	require.NoError(t, err)

	logger.Debugf("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestZerologLogger_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty", Console: &bytes.Buffer{}})
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestZerologLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "psync.log")

	logger, err := New(Options{File: path, Console: &bytes.Buffer{}})
	require.NoError(t, err)

	logger.Errorf("stash pop failed in %s", "/tmp/repo")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"level":"error"`)
	assert.Contains(t, string(data), "stash pop failed in /tmp/repo")
}

func TestZerologLogger_ThreadSafety(t *testing.T) {
	var buf safeBuffer
	logger, err := New(Options{Console: &buf, NoColor: true})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Logf("concurrent message from goroutine %d", id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, bytes.Count(buf.Bytes(), []byte("concurrent message")))
}

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Bytes()
}
