package utils

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/zeebo/blake3"
)

//hash algorithms
const (
	MD5    = "md5"
	BLAKE3 = "blake3"
)

//NewHash - returns a digest for the named algorithm
func NewHash(algorithm string) (hash.Hash, error) {
	switch strings.ToLower(algorithm) {
	case "", MD5:
		return md5.New(), nil
	case BLAKE3:
		return blake3.New(), nil
	}

	return nil, &ConfigError{Msg: "unknown hash algorithm " + algorithm}
}

//HashFile - streams path through the algorithm and returns the hex digest
func HashFile(fs afero.Fs, path string, algorithm string) (string, error) {
	h, err := NewHash(algorithm)
	if err != nil {
		return "", err
	}
	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
