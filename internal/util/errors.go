package util

import "errors"

var (
	ErrPlanNotFound     = errors.New("no cached plan for this user")
	ErrInvalidWorkItem  = errors.New("work item failed validation")
	ErrCacheUnavailable = errors.New("plan cache unavailable")
)
