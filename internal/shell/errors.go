package shell

import "errors"

// Startup failures. Run wraps them with the underlying library error.
var (
	ErrWindowingInit  = errors.New("windowing library initialization failed")
	ErrWindowCreation = errors.New("window creation failed")
	ErrRendererInit   = errors.New("renderer initialization failed")
)
