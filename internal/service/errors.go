package service

import "errors"

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidFileType    = errors.New("please upload a valid PDF file")
	ErrNotFound           = errors.New("not found")
)
