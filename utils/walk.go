package utils

import (
	"errors"
	"path/filepath"

	"github.com/karrick/godirwalk"
	"github.com/spf13/afero"
)

//ErrUserBreak - returned by a WalkFunc to halt the walk
var ErrUserBreak = errors.New("UserBreak")

//WalkFunc - called for every entry below the root, directories before their children
type WalkFunc func(path string, isDir bool) error

//Walker - depth-first pre-order traversal
type Walker interface {
	Walk(root string, fn WalkFunc) error
}

//DirWalker - walks the OS filesystem with godirwalk
type DirWalker struct {
	//OnError is told about entries that could not be read; they are skipped
	OnError func(path string, err error)
}

//NewDirWalker -
func NewDirWalker(onError func(string, error)) *DirWalker {
	return &DirWalker{OnError: onError}
}

//Walk -
func (w *DirWalker) Walk(root string, fn WalkFunc) error {
	root = filepath.Clean(root)
	return godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(name string, de *godirwalk.Dirent) error {
			//root -> skip
			if name == root {
				return nil
			}
			return fn(name, de.IsDir())
		},
		ErrorCallback: func(name string, err error) godirwalk.ErrorAction {
			if errors.Is(err, ErrUserBreak) {
				return godirwalk.Halt
			}
			if w.OnError != nil {
				w.OnError(name, err)
			}

			return godirwalk.SkipNode
		},
		Unsorted: true,
	})
}

//FsWalker - walks any afero filesystem by listing each directory.
//DirWalker only reads the OS filesystem; this one serves in-memory and
//wrapped afero filesystems such as MemMapFs or ReadOnlyFs.
type FsWalker struct {
	Fs      afero.Fs
	OnError func(path string, err error)
}

//NewFsWalker -
func NewFsWalker(fs afero.Fs, onError func(string, error)) *FsWalker {
	return &FsWalker{Fs: fs, OnError: onError}
}

//Walk -
func (w *FsWalker) Walk(root string, fn WalkFunc) error {
	return w.walk(filepath.Clean(root), fn)
}

func (w *FsWalker) walk(dir string, fn WalkFunc) error {
	entries, err := afero.ReadDir(w.Fs, dir)
	if err != nil {
		if w.OnError != nil {
			w.OnError(dir, err)
		}
		return nil
	}
	for _, e := range entries {
		name := filepath.Join(dir, e.Name())
		if err := fn(name, e.IsDir()); err != nil {
			return err
		}
		if e.IsDir() {
			if err := w.walk(name, fn); err != nil {
				return err
			}
		}
	}

	return nil
}
