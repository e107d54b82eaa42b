package bot

import (
	"testing"
	"time"

	"github.com/Ivan200424/Voltyk/internal/domain"
	derrors "github.com/Ivan200424/Voltyk/internal/errors"
	"github.com/Ivan200424/Voltyk/internal/ports/errcode"
	"github.com/Ivan200424/Voltyk/internal/repository"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

const channelID int64 = -1001

func memberUpdate(by int64, role telebot.MemberStatus) *fakeCtx {
	return &fakeCtx{
		member: &telebot.ChatMemberUpdate{
			Chat:          &telebot.Chat{ID: channelID, Type: telebot.ChatChannel, Title: "Світло Оболонь"},
			Sender:        &telebot.User{ID: by},
			OldChatMember: &telebot.ChatMember{Role: telebot.Left},
			NewChatMember: &telebot.ChatMember{Role: role},
		},
	}
}

func TestChannel_AddedGoesToPending(t *testing.T) {
	env := newTestEnv(t)
	env.running()
	env.users.EXPECT().GetUserByChannelID(gomock.Any(), channelID).Return(domain.User{}, repository.ErrNotFound)
	env.sender.EXPECT().Send(telebot.ChatID(userID), gomock.Any(), gomock.Any()).Return(&telebot.Message{}, nil)

	require.NoError(t, env.bot.onMyChatMember(memberUpdate(userID, telebot.Administrator)))

	pc, ok := env.bot.deps.Channels.Get(channelID)
	require.True(t, ok)
	assert.Equal(t, "42", pc.AddedBy)
	assert.Equal(t, "Світло Оболонь", pc.Title)
}

func TestChannel_AddedButOccupied(t *testing.T) {
	env := newTestEnv(t)
	env.running()
	env.users.EXPECT().GetUserByChannelID(gomock.Any(), channelID).Return(domain.User{TelegramID: "7"}, nil)
	env.sender.EXPECT().Send(telebot.ChatID(userID), translateBotError(errcode.ChannelOccupied)).Return(&telebot.Message{}, nil)

	require.NoError(t, env.bot.onMyChatMember(memberUpdate(userID, telebot.Administrator)))
	assert.Equal(t, 0, env.bot.deps.Channels.Len())
}

func TestChannel_AddedWhilePaused(t *testing.T) {
	env := newTestEnv(t)
	env.settings.EXPECT().IsPaused(gomock.Any()).Return(true)
	env.sender.EXPECT().Send(telebot.ChatID(userID), gomock.Any()).Return(&telebot.Message{}, nil)

	require.NoError(t, env.bot.onMyChatMember(memberUpdate(userID, telebot.Administrator)))
	assert.Equal(t, 0, env.bot.deps.Channels.Len())
}

func TestChannel_NonChannelChatIgnored(t *testing.T) {
	env := newTestEnv(t)
	c := memberUpdate(userID, telebot.Administrator)
	c.member.Chat.Type = telebot.ChatGroup
	require.NoError(t, env.bot.onMyChatMember(c))
}

func TestChannel_ConfirmBindsChannel(t *testing.T) {
	env := newTestEnv(t)
	env.running()
	env.bot.deps.Channels.Set(channelID, PendingChannel{ID: channelID, Title: "Світло Оболонь", AddedBy: "42", AddedAt: time.Now()})

	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(registered(), nil)
	env.users.EXPECT().GetUserByChannelID(gomock.Any(), channelID).Return(domain.User{}, repository.ErrNotFound)
	env.users.EXPECT().UpdateChannel(gomock.Any(), "42", channelID).Return(nil)

	c := press(userID, "channel_confirm_-1001")
	require.NoError(t, env.bot.onCallback(c))

	assert.Contains(t, c.lastEdit().text, "підключено")
	assert.Contains(t, c.lastSent().text, "Канал: підключено")
	assert.Equal(t, 0, env.bot.deps.Channels.Len())
}

func TestChannel_ConfirmByAnotherUserRejected(t *testing.T) {
	env := newTestEnv(t)
	env.running()
	env.bot.deps.Channels.Set(channelID, PendingChannel{ID: channelID, AddedBy: "7"})

	c := press(userID, "channel_confirm_-1001")
	require.NoError(t, env.bot.onCallback(c))
	assert.Equal(t, translateBotError(errcode.ChannelNotFound), c.lastResponse().Text)
	assert.Equal(t, 1, env.bot.deps.Channels.Len())
}

func TestChannel_ConfirmRaceLostToUniqueIndex(t *testing.T) {
	env := newTestEnv(t)
	env.running()
	env.bot.deps.Channels.Set(channelID, PendingChannel{ID: channelID, AddedBy: "42"})

	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(registered(), nil)
	env.users.EXPECT().GetUserByChannelID(gomock.Any(), channelID).Return(domain.User{}, repository.ErrNotFound)
	env.users.EXPECT().UpdateChannel(gomock.Any(), "42", channelID).Return(derrors.ErrChannelOccupied)

	c := press(userID, "channel_confirm_-1001")
	require.NoError(t, env.bot.onCallback(c))
	assert.Equal(t, translateBotError(errcode.ChannelOccupied), c.lastResponse().Text)
	assert.Equal(t, 0, env.bot.deps.Channels.Len())
}

func TestChannel_RemovedClearsOwner(t *testing.T) {
	env := newTestEnv(t)
	env.bot.deps.Channels.Set(channelID, PendingChannel{ID: channelID, AddedBy: "42"})
	owner := registered()
	owner.ChannelID = channelID

	env.users.EXPECT().GetUserByChannelID(gomock.Any(), channelID).Return(owner, nil)
	env.users.EXPECT().UpdateChannel(gomock.Any(), "42", int64(0)).Return(nil)
	env.sender.EXPECT().Send(telebot.ChatID(userID), gomock.Any()).Return(&telebot.Message{}, nil)

	require.NoError(t, env.bot.onMyChatMember(memberUpdate(userID, telebot.Kicked)))
	assert.Equal(t, 0, env.bot.deps.Channels.Len())
}

func TestChannel_ConnectListsPending(t *testing.T) {
	env := newTestEnv(t)
	env.running()
	env.bot.deps.Channels.Set(channelID, PendingChannel{ID: channelID, Title: "Світло Оболонь", AddedBy: "42"})
	env.bot.deps.Channels.Set(-2002, PendingChannel{ID: -2002, AddedBy: "7"})
	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(registered(), nil)

	c := press(userID, cbChannelConnect)
	require.NoError(t, env.bot.onCallback(c))

	kb := c.lastEdit().markup
	require.NotNil(t, kb)
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "channel_confirm_-1001", kb.InlineKeyboard[0][0].Data)
}
