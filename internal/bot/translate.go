package bot

import "github.com/Ivan200424/Voltyk/internal/ports/errcode"

const (
	textNeedStart    = "❌ Спочатку налаштуйте бота командою /start"
	textUserNotFound = "Користувач не знайдений"
	textSessionStale = "Сесія застаріла, почніть з /start"
	textInternal     = "Внутрішня помилка сервісу, спробуйте пізніше"
)

func translateBotError(code errcode.Code) string {
	switch code {
	case errcode.NotFoundUser:
		return textUserNotFound
	case errcode.NotFoundSchedule:
		return "Графік для вашого регіону поки недоступний"
	case errcode.ChannelOccupied:
		return "❌ Цей канал вже підключений до іншого користувача"
	case errcode.ChannelNotFound:
		return "Канал не знайдено. Додайте бота адміністратором каналу ще раз"
	case errcode.Paused:
		return "⏸️ Бот тимчасово на паузі"
	case errcode.InvalidIP:
		return "❌ Некоректна IP-адреса. Приклад: 192.168.1.1 або 93.175.1.2:8080"
	case errcode.BadRequest:
		return "❌ Некоректне значення"
	default:
		return textInternal
	}
}
