package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

type fakeAPI struct {
	sentTo  telebot.Recipient
	sent    interface{}
	deleted telebot.Editable
	err     error
}

func (f *fakeAPI) Send(to telebot.Recipient, what interface{}, _ ...interface{}) (*telebot.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sentTo, f.sent = to, what
	return &telebot.Message{ID: 77}, nil
}

func (f *fakeAPI) Delete(msg telebot.Editable) error {
	f.deleted = msg
	return f.err
}

func TestMessenger_Send(t *testing.T) {
	api := &fakeAPI{}
	m := NewMessenger(api)

	id, err := m.Send(context.Background(), -100, "hello")
	require.NoError(t, err)
	assert.Equal(t, 77, id)
	assert.Equal(t, telebot.ChatID(-100), api.sentTo)
	assert.Equal(t, "hello", api.sent)
}

func TestMessenger_SendError(t *testing.T) {
	m := NewMessenger(&fakeAPI{err: errors.New("forbidden")})
	_, err := m.Send(context.Background(), 1, "x")
	require.Error(t, err)
}

func TestMessenger_Delete(t *testing.T) {
	api := &fakeAPI{}
	m := NewMessenger(api)

	require.NoError(t, m.Delete(context.Background(), -100, 5))
	msgID, chatID := api.deleted.MessageSig()
	assert.Equal(t, "5", msgID)
	assert.Equal(t, int64(-100), chatID)
}

func TestMessenger_CanceledContext(t *testing.T) {
	api := &fakeAPI{}
	m := NewMessenger(api)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Send(ctx, 1, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, api.sent)
}
