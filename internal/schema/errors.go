package schema

import "errors"

// ErrInvalidSchema is wrapped by every error the loader returns for a
// malformed or inconsistent description.
var ErrInvalidSchema = errors.New("schema: invalid description")
