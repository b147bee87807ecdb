package utils

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

//TimeLayout - YYYYMMDD_HHmmss
const TimeLayout = "20060102_150405"

//DestName - name for the n-th file taken at t with extension ext
func DestName(t time.Time, n int, ext string) string {
	return fmt.Sprintf("%v_%03d%v", t.Local().Format(TimeLayout), n, ext)
}

//Ext - everything from the last '.' of the base name, or ""
func Ext(name string) string {
	return filepath.Ext(filepath.Base(name))
}

//FreeName - first DestName in dir that does not exist yet
func FreeName(fs afero.Fs, dir string, t time.Time, ext string) (string, error) {
	for n := 0; ; n++ {
		path := filepath.Join(dir, DestName(t, n, ext))
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return "", err
		}
		if !exists {
			return path, nil
		}
	}
}
