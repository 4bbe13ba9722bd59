package platform

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	return NewWorkspace(afero.NewMemMapFs(), "/srv/downloads", hclog.NewNullLogger())
}

func touch(t *testing.T, fs afero.Fs, path string, mod time.Time) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte("data"), 0o644))
	require.NoError(t, fs.Chtimes(path, mod, mod))
}

func TestWorkspace_NewTransferDir(t *testing.T) {
	ws := newTestWorkspace(t)

	a, err := ws.NewTransferDir()
	require.NoError(t, err)
	b, err := ws.NewTransferDir()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, "/srv/downloads", filepath.Dir(a))
	ok, err := afero.DirExists(ws.Fs(), a)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWorkspace_LocateSkipsPartialFiles(t *testing.T) {
	ws := newTestWorkspace(t)
	dir, err := ws.NewTransferDir()
	require.NoError(t, err)

	now := time.Now()
	touch(t, ws.Fs(), filepath.Join(dir, "Clip.mp4.part"), now.Add(time.Minute))
	touch(t, ws.Fs(), filepath.Join(dir, "Clip.mp4.ytdl"), now.Add(time.Minute))
	touch(t, ws.Fs(), filepath.Join(dir, "Clip.mp4"), now)

	found, err := ws.Locate(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Clip.mp4"), found)
}

func TestWorkspace_LocatePrefersHintThenNewest(t *testing.T) {
	ws := newTestWorkspace(t)
	dir := "/home/u/Downloads/MyVideoDownloads"
	require.NoError(t, ws.EnsureDir(dir))

	now := time.Now()
	touch(t, ws.Fs(), filepath.Join(dir, "Old Song.m4a"), now.Add(-time.Hour))
	touch(t, ws.Fs(), filepath.Join(dir, "New Clip.webm"), now)

	found, err := ws.Locate(dir, "Old Song.m4a")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Old Song.m4a"), found)

	found, err = ws.Locate(dir, filepath.Join(dir, "New Clip.f137.mp4"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "New Clip.webm"), found)
}

func TestWorkspace_LocateEmptyDir(t *testing.T) {
	ws := newTestWorkspace(t)
	dir, err := ws.NewTransferDir()
	require.NoError(t, err)
	touch(t, ws.Fs(), filepath.Join(dir, "x.part"), time.Now())

	_, err = ws.Locate(dir, "")
	assert.ErrorIs(t, err, ErrNoDownloadedFile)
}

func TestWorkspace_ScheduleRemoval(t *testing.T) {
	ws := newTestWorkspace(t)
	dir, err := ws.NewTransferDir()
	require.NoError(t, err)
	touch(t, ws.Fs(), filepath.Join(dir, "a.mp4"), time.Now())

	ws.ScheduleRemoval(dir, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		ok, _ := afero.DirExists(ws.Fs(), dir)
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestIsPartialFile(t *testing.T) {
	assert.True(t, IsPartialFile("a.mp4.part"))
	assert.True(t, IsPartialFile("a.ytdl"))
	assert.False(t, IsPartialFile("a.mp4"))
	assert.False(t, IsPartialFile("partial.mp4"))
}
