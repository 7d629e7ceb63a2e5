package entity

import "errors"

var (
	// Input errors
	ErrInvalidArguments   = errors.New("invalid arguments")
	ErrInvalidColor       = errors.New("invalid color")
	ErrInvalidBorderStyle = errors.New("invalid border style")

	// Image I/O errors
	ErrDecode = errors.New("cannot decode image")
	ErrEncode = errors.New("cannot encode image")

	// Storage errors
	ErrImageNotFound = errors.New("image not found")
)
