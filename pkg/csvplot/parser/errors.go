package parser

import "errors"

// ErrNoColumns indicates the input holds no header row at all.
var ErrNoColumns = errors.New("no columns to parse from file")
