package utils

import (
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/spf13/afero"
)

func init() {
	exif.RegisterParsers(mknote.All...)
}

//ExifTime - DateTimeOriginal of an image, ok is false when it has none
func ExifTime(fs afero.Fs, path string) (t time.Time, ok bool) {
	f, err := fs.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return
	}
	t, err = x.DateTime()
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}

	return t, true
}
