package grepcore

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/harrison/zgrep/internal/style"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "file error",
			err:  &FileError{Path: "a.txt", Reason: ReasonFileNotFound},
			want: "zgrep: FILE ERROR: a.txt : File not found",
		},
		{
			name: "argument error",
			err:  &ArgError{Expected: 2, Received: 1},
			want: "zgrep: ARGUMENT ERROR: Expected 2 but received 1 arguments",
		},
		{
			name: "option error",
			err:  &OptionError{Token: "--bogus"},
			want: "zgrep: OPTION ERROR: Unknown option: --bogus",
		},
		{
			name: "path error",
			err:  &PathError{Path: "bad\xffname"},
			want: `zgrep: PATH ERROR: Path is not valid UTF-8: "bad\xffname"`,
		},
		{
			name: "entry error",
			err:  &EntryError{Dir: "d", Cause: errors.New("io")},
			want: "zgrep: DIRECTORY ENTRY ERROR",
		},
		{
			name: "wrapped file error",
			err:  fmt.Errorf("scan: %w", &FileError{Path: "b.txt", Reason: ReasonInvalidData}),
			want: "zgrep: FILE ERROR: b.txt : Invalid data",
		},
		{
			name: "foreign error",
			err:  errors.New("boom"),
			want: "zgrep: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.err, style.Plain{}))
		})
	}
}

func TestRenderNil(t *testing.T) {
	assert.Empty(t, Render(nil, nil))
}

func TestRenderNilStylerIsPlain(t *testing.T) {
	err := &FileError{Path: "a.txt", Reason: ReasonUnknownFile}
	assert.Equal(t, Render(err, style.Plain{}), Render(err, nil))
}

func TestRenderColorsErrorPath(t *testing.T) {
	err := &FileError{Path: "a.txt", Reason: ReasonFileNotFound}

	got := Render(err, style.NewColorStyler())

	assert.Contains(t, got, "\x1b[31m")
	assert.Contains(t, got, "a.txt")
	assert.Contains(t, got, ": File not found")
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(&ArgError{Expected: 2, Received: 0}))
	assert.True(t, IsFatal(&OptionError{Token: "-x"}))
	assert.True(t, IsFatal(errors.New("unexpected")))
	assert.False(t, IsFatal(&FileError{Path: "a", Reason: ReasonFileNotFound}))
	assert.False(t, IsFatal(&PathError{Path: "a"}))
	assert.False(t, IsFatal(&EntryError{Dir: "d"}))
	assert.False(t, IsFatal(nil))
}

func TestFileErrorUnwrap(t *testing.T) {
	err := &FileError{Path: "a", Reason: ReasonFileNotFound, Cause: fs.ErrNotExist}
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
