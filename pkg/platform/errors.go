package platform

import "errors"

var (
	ErrInvalidRule    = errors.New("invalid classification rule")
	ErrInvalidPattern = errors.New("invalid rule pattern")
	ErrUnknownType    = errors.New("unknown device type")
	ErrParseRules     = errors.New("failed to parse rules")
	ErrLoadRules      = errors.New("failed to load rules")
)
