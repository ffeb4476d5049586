package storage

import "errors"

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrForbidden       = errors.New("not the author")
	ErrEventInPast     = errors.New("event already took place")
)
