package main

import (
	"errors"
	"path/filepath"

	"ditto.co.jp/filecopier/swap"
	"ditto.co.jp/filecopier/utils"
	"github.com/spf13/afero"
)

//errAborted - the fail-stop threshold was reached
var errAborted = errors.New("aborted after consecutive copy errors")

//hashStore - lookup side of swap.Store
type hashStore interface {
	Exists(hash string) (bool, error)
}

//Stats -
type Stats struct {
	Copied       int
	CopiedBytes  int64
	Unchanged    int
	HashErrors   int
	CopyErrors   int
	LookupErrors int
}

//Copier - state of one run
type Copier struct {
	Source    string
	Target    string
	FailStop  int
	Algorithm string
	Exif      bool

	fs     afero.Fs
	walker utils.Walker
	store  hashStore
	report *utils.Reporter

	root    string
	seen    map[string]struct{}
	records []*swap.Record
	fails   int
	Stats   Stats
}

//NewCopier - store may be nil when no database is used
func NewCopier(fs afero.Fs, walker utils.Walker, store hashStore, report *utils.Reporter) *Copier {
	return &Copier{
		Algorithm: utils.MD5,
		fs:        fs,
		walker:    walker,
		store:     store,
		report:    report,
		seen:      make(map[string]struct{}),
	}
}

//Records - transfers waiting to be flushed
func (c *Copier) Records() []*swap.Record {
	return c.records
}

//Run - walks Source and copies every new file into Target
func (c *Copier) Run() error {
	c.root = c.Source
	if st, err := c.fs.Stat(c.root); err == nil && !st.IsDir() {
		c.root = filepath.Dir(c.root)
	}

	err := c.walker.Walk(c.root, func(path string, isDir bool) error {
		if isDir {
			return nil
		}
		return c.visit(path)
	})
	if errors.Is(err, utils.ErrUserBreak) {
		return errAborted
	}

	return err
}

func (c *Copier) visit(path string) error {
	//symlinks count when they resolve to a regular file
	st, err := c.fs.Stat(path)
	if err != nil {
		c.Stats.HashErrors++
		c.report.Errorf("%v", utils.NewHashReadError(path, err))
		return nil
	}
	if !st.Mode().IsRegular() {
		return nil
	}

	sum, err := utils.HashFile(c.fs, path, c.Algorithm)
	if err != nil {
		c.Stats.HashErrors++
		c.report.Errorf("%v", utils.NewHashReadError(path, err))
		return nil
	}

	dup, err := c.duplicate(sum)
	if err != nil {
		c.Stats.LookupErrors++
		c.report.Errorf("%v", utils.NewLookupError(path, err))
		return nil
	}
	if dup {
		c.Stats.Unchanged++
		c.report.Printf(utils.Unchanged, "%v", c.relative(path))
		return nil
	}

	dest, err := c.copy(path, st)
	if err != nil {
		c.Stats.CopyErrors++
		c.report.Errorf("%v", utils.NewCopyError(path, err))
		c.fails++
		if c.fails == c.FailStop {
			c.report.Infof("stopping after %v consecutive errors", c.FailStop)
			return utils.ErrUserBreak
		}
		return nil
	}

	c.fails = 0
	c.seen[sum] = struct{}{}
	c.records = append(c.records, &swap.Record{
		Hash:        sum,
		Source:      absolute(path),
		Destination: absolute(dest),
	})
	c.Stats.Copied++
	c.Stats.CopiedBytes += st.Size()
	c.report.Printf(utils.Copied, "%v => %v", c.relative(path), absolute(dest))

	return nil
}

func (c *Copier) duplicate(sum string) (bool, error) {
	if _, ok := c.seen[sum]; ok {
		return true, nil
	}
	if c.store == nil {
		return false, nil
	}

	return c.store.Exists(sum)
}

func (c *Copier) relative(path string) string {
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		return path
	}
	return rel
}

func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

//ensure Copier can use swap.Store directly
var _ hashStore = (*swap.Store)(nil)
