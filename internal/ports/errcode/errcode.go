package errcode

type Code string

const (
	NotFoundUser     Code = "NOT_FOUND_USER"
	NotFoundSchedule Code = "NOT_FOUND_SCHEDULE"

	ChannelOccupied Code = "CHANNEL_OCCUPIED"
	ChannelNotFound Code = "CHANNEL_NOT_FOUND"
	Paused          Code = "PAUSED"
	InvalidIP       Code = "INVALID_IP"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)
