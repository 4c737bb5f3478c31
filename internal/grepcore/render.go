package grepcore

import (
	"errors"
	"fmt"

	"github.com/harrison/zgrep/internal/style"
)

const prefix = "zgrep: "

// Render formats err as the message shown to the user.
// Paths inside the message are painted with style.ErrorPath.
func Render(err error, s style.Styler) string {
	if err == nil {
		return ""
	}
	if s == nil {
		s = style.Plain{}
	}

	var (
		fileErr  *FileError
		argErr   *ArgError
		optErr   *OptionError
		pathErr  *PathError
		entryErr *EntryError
	)
	switch {
	case errors.As(err, &fileErr):
		return fmt.Sprintf("%sFILE ERROR: %s : %s", prefix, s.Paint(fileErr.Path, style.ErrorPath), fileErr.Reason)
	case errors.As(err, &argErr):
		return fmt.Sprintf("%sARGUMENT ERROR: Expected %d but received %d arguments", prefix, argErr.Expected, argErr.Received)
	case errors.As(err, &optErr):
		return fmt.Sprintf("%sOPTION ERROR: Unknown option: %s", prefix, optErr.Token)
	case errors.As(err, &pathErr):
		return fmt.Sprintf("%sPATH ERROR: Path is not valid UTF-8: %q", prefix, pathErr.Path)
	case errors.As(err, &entryErr):
		return prefix + "DIRECTORY ENTRY ERROR"
	default:
		return prefix + err.Error()
	}
}
