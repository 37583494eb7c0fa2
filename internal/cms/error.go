package cms

import "errors"

var (
	ErrPageNotFound = errors.New("page not found")
	ErrPostNotFound = errors.New("blog post not found")
)
