package utils

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Infof("SOURCE: %v", "/src")
	r.Errorf("%v", NewCopyError("/src/a.jpg", errors.New("disk full")))
	r.Printf(Copied, "%v => %v", "a.jpg", "/dst/x.jpg")
	r.Printf(Unchanged, "%v", "b.jpg")
	r.Println("plain")

	assert.Equal(t, "[INFO] SOURCE: /src\n"+
		"[ERROR] copy /src/a.jpg: disk full\n"+
		"[COPIED] a.jpg => /dst/x.jpg\n"+
		"[UNCHANGED] b.jpg\n"+
		"plain\n", buf.String())
}

func TestFileErrors_Unwrap(t *testing.T) {
	cause := errors.New("boom")

	var hashErr *HashReadError
	assert.True(t, errors.As(NewHashReadError("/a", cause), &hashErr))
	var copyErr *CopyError
	assert.True(t, errors.As(NewCopyError("/a", cause), &copyErr))
	var lookupErr *LookupError
	assert.True(t, errors.As(NewLookupError("/a", cause), &lookupErr))

	assert.True(t, errors.Is(NewLookupError("/a", cause), cause))
	assert.True(t, errors.Is(&FlushError{Count: 2, Err: cause}, cause))
	assert.Equal(t, "flush 2 records: boom", (&FlushError{Count: 2, Err: cause}).Error())
}
