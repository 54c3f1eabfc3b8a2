package artist

import "errors"

var ErrNotFound = errors.New("artist not found")
