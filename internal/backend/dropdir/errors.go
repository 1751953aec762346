package dropdir

import "errors"

// ErrNotDirectory is returned when the watched path is not a directory.
var ErrNotDirectory = errors.New("drop path is not a directory")
