package bot

import (
	"errors"
	"testing"
	"time"

	"github.com/Ivan200424/Voltyk/internal/domain"
	derrors "github.com/Ivan200424/Voltyk/internal/errors"
	"github.com/Ivan200424/Voltyk/internal/ports/errcode"
	"github.com/Ivan200424/Voltyk/internal/repository"
	"github.com/Ivan200424/Voltyk/internal/service/settings"
	"github.com/Ivan200424/Voltyk/internal/wizard"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

func TestRouter_Match(t *testing.T) {
	r := newRouter()
	var got string
	r.on("alert_toggle", func(telebot.Context, string) error { got = "exact"; return nil })
	r.onPrefix("alert_", func(_ telebot.Context, arg string) error { got = "prefix:" + arg; return nil })

	rt, arg, ok := r.match("alert_toggle")
	require.True(t, ok)
	require.NoError(t, rt.fn(nil, arg))
	assert.Equal(t, "exact", got)

	rt, arg, ok = r.match("alert_15")
	require.True(t, ok)
	require.NoError(t, rt.fn(nil, arg))
	assert.Equal(t, "prefix:15", got)

	_, _, ok = r.match("alert_")
	assert.False(t, ok)
	_, _, ok = r.match("something_else")
	assert.False(t, ok)
}

func TestCallback_UnknownDataIsAnswered(t *testing.T) {
	env := newTestEnv(t)
	c := press(userID, "no_such_button")
	require.NoError(t, env.bot.onCallback(c))
	require.Len(t, c.responses, 1)
	assert.Empty(t, c.edits)
}

func TestPrecondition_CallbackWithoutUser(t *testing.T) {
	env := newTestEnv(t)
	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(domain.User{}, repository.ErrNotFound)

	c := press(userID, cbMenuSchedule)
	require.NoError(t, env.bot.onCallback(c))

	require.Len(t, c.responses, 1)
	assert.True(t, c.responses[0].ShowAlert)
	assert.Contains(t, c.responses[0].Text, textUserNotFound)
	assert.Contains(t, c.responses[0].Text, "/start")
}

func TestPrecondition_MenuCommandWithoutUser(t *testing.T) {
	env := newTestEnv(t)
	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(domain.User{}, repository.ErrNotFound)

	c := command(userID, "/menu")
	require.NoError(t, env.bot.handleMenuCommand(c))
	assert.Equal(t, textNeedStart, c.lastSent().text)
}

func TestSchedule_TodayShown(t *testing.T) {
	env := newTestEnv(t)
	u := registered()
	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(u, nil)
	env.schedule.EXPECT().Today(gomock.Any(), u).Return("графік", nil)

	c := press(userID, cbMenuSchedule)
	require.NoError(t, env.bot.onCallback(c))
	assert.Equal(t, "графік", c.lastEdit().text)
}

func TestSchedule_SourceMissing(t *testing.T) {
	env := newTestEnv(t)
	u := registered()
	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(u, nil)
	env.schedule.EXPECT().Today(gomock.Any(), u).Return("", derrors.ErrScheduleNotFound)

	c := press(userID, cbMenuSchedule)
	require.NoError(t, env.bot.onCallback(c))
	assert.Equal(t, translateBotError(errcode.NotFoundSchedule), c.lastResponse().Text)
}

func TestAdmin_CallbacksGated(t *testing.T) {
	env := newTestEnv(t)

	for _, data := range []string{cbAdminPanel, cbAdminStats, cbAdminSchedulePref + "300", cbPauseToggle, cbPauseTemplatePref + "1"} {
		c := press(userID, data)
		require.NoError(t, env.bot.onCallback(c), data)
		require.Len(t, c.responses, 1, data)
		assert.Equal(t, textAccessDenied, c.responses[0].Text, data)
		assert.Empty(t, c.edits, data)
	}
}

func TestAdmin_CommandGated(t *testing.T) {
	env := newTestEnv(t)
	c := command(userID, "/admin")
	require.NoError(t, env.bot.handleAdminCommand(c))
	assert.Equal(t, textAccessDenied, c.lastSent().text)

	env.running()
	c = command(adminID, "/admin")
	require.NoError(t, env.bot.handleAdminCommand(c))
	assert.Equal(t, "🔧 Адмін-панель", c.lastSent().text)
}

func TestAdmin_Stats(t *testing.T) {
	env := newTestEnv(t)
	env.users.EXPECT().Stats(gomock.Any()).Return(domain.Stats{
		Total: 10, Active: 8, WithChannel: 3, WithIP: 2,
		ByRegion: map[string]int{"kyiv": 6, "odesa": 4},
	}, nil)

	c := press(adminID, cbAdminStats)
	require.NoError(t, env.bot.onCallback(c))
	text := c.lastEdit().text
	assert.Contains(t, text, "Користувачів: 10")
	assert.Contains(t, text, "Київ: 6")
	assert.Contains(t, text, "Одещина: 4")
}

func TestAdmin_ScheduleInterval(t *testing.T) {
	env := newTestEnv(t)
	env.settings.EXPECT().SetScheduleInterval(gomock.Any(), 5*time.Minute).Return(nil)
	env.settings.EXPECT().PowerInterval(gomock.Any()).Return(2 * time.Second)

	c := press(adminID, cbAdminSchedulePref+"300")
	require.NoError(t, env.bot.onCallback(c))
	assert.Contains(t, c.lastEdit().text, "Графіки: кожні 5 хв")

	// значения вне списка не принимаются
	c = press(adminID, cbAdminSchedulePref+"7")
	require.NoError(t, env.bot.onCallback(c))
	assert.Equal(t, translateBotError(errcode.BadRequest), c.lastResponse().Text)
}

func TestAdmin_PowerIntervalError(t *testing.T) {
	env := newTestEnv(t)
	env.settings.EXPECT().SetPowerInterval(gomock.Any(), 10*time.Second).Return(errors.New("db down"))

	c := press(adminID, cbAdminIPPref+"10")
	require.NoError(t, env.bot.onCallback(c))
	assert.Equal(t, textInternal, c.lastResponse().Text)
}

func TestAdmin_PauseToggleAndTemplate(t *testing.T) {
	env := newTestEnv(t)
	env.settings.EXPECT().TogglePaused(gomock.Any()).Return(true, nil)
	env.settings.EXPECT().PauseMessage(gomock.Any()).Return(settings.DefaultPauseMessage)

	c := press(adminID, cbPauseToggle)
	require.NoError(t, env.bot.onCallback(c))
	assert.Contains(t, c.lastEdit().text, "Бот на паузі")

	env.settings.EXPECT().SetPauseMessage(gomock.Any(), settings.PauseTemplates[1]).Return(nil)
	env.settings.EXPECT().IsPaused(gomock.Any()).Return(true)
	c = press(adminID, cbPauseTemplatePref+"2")
	require.NoError(t, env.bot.onCallback(c))
	assert.Contains(t, c.lastEdit().text, settings.PauseTemplates[1])
}

func TestAdmin_CustomPauseMessage(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.bot.onCallback(press(adminID, cbPauseCustom)))

	env.settings.EXPECT().SetPauseMessage(gomock.Any(), "Технічні роботи").Return(nil)
	c := command(adminID, "  Технічні роботи ")
	require.NoError(t, env.bot.onText(c))
	assert.Contains(t, c.lastSent().text, "збережено")
	_, pending := env.bot.deps.Convs.Get("1")
	assert.False(t, pending)
}

func TestText_PauseMessageFromNonAdminRejected(t *testing.T) {
	env := newTestEnv(t)
	env.bot.deps.Convs.Set("42", Conversation{Kind: ConvPauseMessage})

	c := command(userID, "hacked")
	require.NoError(t, env.bot.onText(c))
	assert.Equal(t, textAccessDenied, c.lastSent().text)
}

func TestText_RouterIP(t *testing.T) {
	env := newTestEnv(t)
	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(registered(), nil)
	require.NoError(t, env.bot.onCallback(press(userID, cbSettingsIP)))

	c := command(userID, "not-an-ip")
	require.NoError(t, env.bot.onText(c))
	assert.Equal(t, translateBotError(errcode.InvalidIP), c.lastSent().text)
	_, pending := env.bot.deps.Convs.Get("42")
	require.True(t, pending)

	env.users.EXPECT().UpdateRouterIP(gomock.Any(), "42", "93.175.1.2:8080").Return(nil)
	c = command(userID, "93.175.1.2:8080")
	require.NoError(t, env.bot.onText(c))
	assert.Contains(t, c.lastSent().text, "93.175.1.2:8080")
	_, pending = env.bot.deps.Convs.Get("42")
	assert.False(t, pending)
}

func TestText_FormatTemplate(t *testing.T) {
	env := newTestEnv(t)
	u := registered()
	u.Format.DeleteOldMessage = true
	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(u, nil).Times(2)
	require.NoError(t, env.bot.onCallback(press(userID, cbFormatPeriod)))

	env.users.EXPECT().UpdateFormatSettings(gomock.Any(), "42", domain.FormatSettings{
		PeriodFormat:     "{from}-{to}",
		DeleteOldMessage: true,
	}).Return(nil)
	c := command(userID, "{from}-{to}")
	require.NoError(t, env.bot.onText(c))
	assert.Equal(t, "✅ Шаблон збережено", c.lastSent().text)
}

func TestText_WithoutConversation(t *testing.T) {
	env := newTestEnv(t)
	c := command(userID, "hello")
	require.NoError(t, env.bot.onText(c))
	assert.Contains(t, c.lastSent().text, "/menu")
}

func TestCancel_DropsConversationAndSession(t *testing.T) {
	env := newTestEnv(t)
	env.running()
	env.bot.deps.Convs.Set("42", Conversation{Kind: ConvRouterIP})
	env.bot.deps.Wizard.Begin("42", "ivan", wizard.ModeNew, nil)
	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(registered(), nil)

	c := command(userID, "/cancel")
	require.NoError(t, env.bot.handleCancel(c))
	assert.Contains(t, c.lastSent().text, "Скасовано")
	assert.Equal(t, 0, env.store.Len())
	assert.Equal(t, 0, env.bot.deps.Convs.Len())

	c = command(userID, "/cancel")
	require.NoError(t, env.bot.handleCancel(c))
	assert.Equal(t, "Немає активних дій для скасування", c.lastSent().text)
}

func TestAlerts_ToggleAndTime(t *testing.T) {
	env := newTestEnv(t)
	u := registered()
	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(u, nil).Times(2)
	env.users.EXPECT().UpdateAlertBefore(gomock.Any(), "42", 0).Return(nil)
	env.users.EXPECT().UpdateAlertBefore(gomock.Any(), "42", 30).Return(nil)

	c := press(userID, cbAlertToggle)
	require.NoError(t, env.bot.onCallback(c))
	assert.Contains(t, c.lastEdit().text, "вимкнено")

	c = press(userID, cbAlertTimePref+"30")
	require.NoError(t, env.bot.onCallback(c))
	assert.Contains(t, c.lastEdit().text, "за 30 хв")

	c = press(userID, cbAlertTimePref+"7")
	require.NoError(t, env.bot.onCallback(c))
	assert.Equal(t, translateBotError(errcode.BadRequest), c.lastResponse().Text)
}

func TestDeleteAccount(t *testing.T) {
	env := newTestEnv(t)
	env.bot.deps.Convs.Set("42", Conversation{Kind: ConvRouterIP})
	env.users.EXPECT().DeleteUser(gomock.Any(), "42").Return(nil)

	c := press(userID, cbDeleteConfirm)
	require.NoError(t, env.bot.onCallback(c))
	assert.Contains(t, c.lastEdit().text, "видалено")
	assert.Equal(t, 0, env.bot.deps.Convs.Len())
}

func TestTestPublication(t *testing.T) {
	env := newTestEnv(t)
	env.running()
	u := registered()
	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(u, nil).Times(2)
	env.schedule.EXPECT().PublishTest(gomock.Any(), u).Return(nil)

	c := press(userID, cbTestSchedule)
	require.NoError(t, env.bot.onCallback(c))
	assert.Equal(t, "✅ Графік опубліковано", c.lastResponse().Text)

	// без IP тест світла не запускается
	c = press(userID, cbTestPower)
	require.NoError(t, env.bot.onCallback(c))
	assert.Contains(t, c.lastResponse().Text, "IP роутера")
}

func TestStats_WithoutUserAsksToStart(t *testing.T) {
	env := newTestEnv(t)
	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(domain.User{}, repository.ErrNotFound)

	c := press(userID, cbMenuStats)
	require.NoError(t, env.bot.onCallback(c))

	require.Len(t, c.responses, 1)
	assert.True(t, c.responses[0].ShowAlert)
	assert.Contains(t, c.responses[0].Text, textUserNotFound)
	assert.Contains(t, c.responses[0].Text, textNeedStart)
	assert.Empty(t, c.edits)
}

func TestStats_ShowsOwnRecord(t *testing.T) {
	env := newTestEnv(t)
	u := registered()
	u.ChannelID = channelID
	u.RouterIP = "93.175.1.2"
	u.PowerState = domain.PowerOff
	changed := time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC)
	u.PowerChangedAt = &changed
	env.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(u, nil)

	c := press(userID, cbMenuStats)
	require.NoError(t, env.bot.onCallback(c))

	text := c.lastEdit().text
	assert.Contains(t, text, "Київ")
	assert.Contains(t, text, "Черга: 3.1")
	assert.Contains(t, text, "Канал: підключено")
	assert.Contains(t, text, "за 15 хв")
	assert.Contains(t, text, "🔴 немає")
	assert.Contains(t, text, "03.11.2025 09:30")
	assert.NotContains(t, text, "93.175.1.2")
}

func TestKeyboards_TestPublicationLivesInFormatMenu(t *testing.T) {
	has := func(kb *telebot.ReplyMarkup, data string) bool {
		for _, row := range kb.InlineKeyboard {
			for _, b := range row {
				if b.Data == data {
					return true
				}
			}
		}
		return false
	}
	assert.False(t, has(settingsKeyboard(true), "settings_test"))
	assert.True(t, has(formatKeyboard(domain.FormatSettings{}), cbFormatTest))
	assert.True(t, has(mainMenuKeyboard(false), cbMenuStats))

	env := newTestEnv(t)
	c := press(userID, cbFormatTest)
	require.NoError(t, env.bot.onCallback(c))
	assert.True(t, has(c.lastEdit().markup, cbTestSchedule))
}
