package utils

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visit struct {
	path  string
	isDir bool
}

func collect(t *testing.T, w Walker, root string) []visit {
	t.Helper()
	var got []visit
	require.NoError(t, w.Walk(root, func(path string, isDir bool) error {
		got = append(got, visit{path, isDir})
		return nil
	}))
	return got
}

//assertPreOrder checks every entry comes after its parent directory
func assertPreOrder(t *testing.T, root string, got []visit) {
	t.Helper()
	seen := map[string]bool{root: true}
	for _, v := range got {
		assert.True(t, seen[filepath.Dir(v.path)], "%v visited before its directory", v.path)
		seen[v.path] = true
	}
}

func paths(got []visit) []string {
	out := make([]string, 0, len(got))
	for _, v := range got {
		out = append(out, v.path)
	}
	sort.Strings(out)
	return out
}

func TestDirWalker(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "deep"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "deep", "c.txt"), []byte("c"), 0644))

	got := collect(t, NewDirWalker(nil), root)
	assertPreOrder(t, root, got)
	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub"),
		filepath.Join(root, "sub", "b.txt"),
		filepath.Join(root, "sub", "deep"),
		filepath.Join(root, "sub", "deep", "c.txt"),
	}, paths(got))

	for _, v := range got {
		assert.Equal(t, filepath.Ext(v.path) == "", v.isDir, v.path)
	}
}

func TestDirWalker_UserBreak(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(name), 0644))
	}

	calls := 0
	err := NewDirWalker(nil).Walk(root, func(path string, isDir bool) error {
		calls++
		return ErrUserBreak
	})
	assert.True(t, errors.Is(err, ErrUserBreak))
	assert.Equal(t, 1, calls)
}

func TestFsWalker(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/src/sub/deep", 0755))
	require.NoError(t, afero.WriteFile(fs, "/src/a.txt", []byte("a"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/src/sub/b.txt", []byte("b"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/src/sub/deep/c.txt", []byte("c"), 0644))

	got := collect(t, NewFsWalker(fs, nil), "/src")
	assertPreOrder(t, "/src", got)
	assert.Equal(t, []string{
		"/src/a.txt",
		"/src/sub",
		"/src/sub/b.txt",
		"/src/sub/deep",
		"/src/sub/deep/c.txt",
	}, paths(got))
}

func TestFsWalker_UserBreak(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/src/sub", 0755))
	require.NoError(t, afero.WriteFile(fs, "/src/sub/a", []byte("a"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/src/z", []byte("z"), 0644))

	var got []string
	err := NewFsWalker(fs, nil).Walk("/src", func(path string, isDir bool) error {
		got = append(got, path)
		if path == "/src/sub/a" {
			return ErrUserBreak
		}
		return nil
	})
	assert.True(t, errors.Is(err, ErrUserBreak))
	assert.Equal(t, []string{"/src/sub", "/src/sub/a"}, got)
}

func TestFsWalker_MissingRoot(t *testing.T) {
	var reported []string
	w := NewFsWalker(afero.NewMemMapFs(), func(path string, err error) {
		reported = append(reported, path)
	})
	require.NoError(t, w.Walk("/missing", func(string, bool) error { return nil }))
	assert.Equal(t, []string{"/missing"}, reported)
}
