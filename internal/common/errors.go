package common

import "errors"

var (
	ErrNoName      = errors.New("Please provide a name")
	ErrNoTitle     = errors.New("Please provide a title")
	ErrNoClient    = errors.New("Please provide a client id")
	ErrBadTier     = errors.New("Please provide a valid tier")
	ErrBadStatus   = errors.New("Please provide a valid status")
	ErrBadPlatform = errors.New("Please provide a valid social media platform")
)
