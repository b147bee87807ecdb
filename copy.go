package main

import (
	"io"
	"os"
	"time"

	"ditto.co.jp/filecopier/utils"
)

//modTime - capture time used for the destination name
func (c *Copier) modTime(path string, st os.FileInfo) time.Time {
	if c.Exif {
		if t, ok := utils.ExifTime(c.fs, path); ok {
			return t
		}
	}
	return st.ModTime()
}

//copy - copies path into Target under a free name and returns that name
func (c *Copier) copy(path string, st os.FileInfo) (string, error) {
	dest, err := utils.FreeName(c.fs, c.Target, c.modTime(path, st), utils.Ext(path))
	if err != nil {
		return "", err
	}

	if err := c.copyFile(path, dest); err != nil {
		c.fs.Remove(dest)
		return "", err
	}
	if err := c.fs.Chtimes(dest, time.Now(), st.ModTime()); err != nil {
		c.fs.Remove(dest)
		return "", err
	}

	return dest, nil
}

func (c *Copier) copyFile(src, dest string) error {
	in, err := c.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := c.fs.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
