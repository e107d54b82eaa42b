package errors

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrChannelOccupied  = errors.New("channel already connected to another user")
	ErrChannelNotFound  = errors.New("pending channel not found")
	ErrPaused           = errors.New("service is paused")
	ErrInvalidIP        = errors.New("invalid router address")
	ErrInvalidInterval  = errors.New("invalid interval")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInternal         = errors.New("internal error")
)
