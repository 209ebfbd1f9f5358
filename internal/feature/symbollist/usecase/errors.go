package usecase

import "errors"

// ErrSymbolNotFound is returned by a repository when no symbol has the given code.
var ErrSymbolNotFound = errors.New("symbol not found")
