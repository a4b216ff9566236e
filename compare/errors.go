package compare

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is wrapped by a FileError when a fixture is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("not valid UTF-8 text")

// FileError reports a file that could not be turned into a line sequence:
// missing, unreadable, or not UTF-8.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
