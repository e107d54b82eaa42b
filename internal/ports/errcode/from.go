package errcode

import (
	"errors"

	derrors "github.com/Ivan200424/Voltyk/internal/errors"
	"github.com/Ivan200424/Voltyk/internal/repository"
)

// FromError - сопоставление доменной ошибки коду, общему для бота и HTTP
func FromError(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, derrors.ErrUserNotFound), errors.Is(err, repository.ErrNotFound):
		return NotFoundUser
	case errors.Is(err, derrors.ErrScheduleNotFound):
		return NotFoundSchedule
	case errors.Is(err, derrors.ErrChannelOccupied):
		return ChannelOccupied
	case errors.Is(err, derrors.ErrChannelNotFound):
		return ChannelNotFound
	case errors.Is(err, derrors.ErrPaused):
		return Paused
	case errors.Is(err, derrors.ErrInvalidIP):
		return InvalidIP
	case errors.Is(err, derrors.ErrInvalidInterval):
		return BadRequest
	default:
		return Internal
	}
}
