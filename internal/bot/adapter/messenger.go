// Package adapter - отправка уведомлений сервисов через Telegram API
package adapter

import (
	"context"
	"strconv"

	"gopkg.in/telebot.v4"
)

// API - часть telebot.Bot, нужная для рассылки
type API interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
	Delete(msg telebot.Editable) error
}

// Messenger реализует notify.Messenger поверх telebot
type Messenger struct {
	api API
}

func NewMessenger(api API) *Messenger {
	return &Messenger{api: api}
}

// Send - текст в чат; возвращает id отправленного сообщения
func (m *Messenger) Send(ctx context.Context, chatID int64, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	msg, err := m.api.Send(telebot.ChatID(chatID), text)
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// Delete - удаление ранее отправленного сообщения
func (m *Messenger) Delete(ctx context.Context, chatID int64, messageID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.api.Delete(&telebot.StoredMessage{MessageID: strconv.Itoa(messageID), ChatID: chatID})
}
