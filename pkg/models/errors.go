package models

import "errors"

var (
	ErrCommandFailed = errors.New("gam command failed")
	ErrParseNoMatch  = errors.New("expected pattern not found in gam output")
	ErrNotATerminal  = errors.New("interactive prompts require a terminal")
	ErrInvalidCell   = errors.New("invalid permission matrix cell")
)
