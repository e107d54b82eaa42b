package bot

import (
	"log/slog"
	"strings"

	"github.com/Ivan200424/Voltyk/internal/wizard"
	"gopkg.in/telebot.v4"
)

// callbackFunc — обработчик callback; arg непуст только для префиксных маршрутов
type callbackFunc func(c telebot.Context, arg string) error

type route struct {
	fn        callbackFunc
	adminOnly bool
}

type prefixRoute struct {
	prefix string
	route
}

// router — точные и префиксные маршруты callback data
type router struct {
	exact    map[string]route
	prefixes []prefixRoute
}

func newRouter() *router {
	return &router{exact: make(map[string]route)}
}

func (r *router) on(data string, fn callbackFunc) {
	r.exact[data] = route{fn: fn}
}

func (r *router) onPrefix(prefix string, fn callbackFunc) {
	r.prefixes = append(r.prefixes, prefixRoute{prefix: prefix, route: route{fn: fn}})
}

func (r *router) admin(data string, fn callbackFunc) {
	r.exact[data] = route{fn: fn, adminOnly: true}
}

func (r *router) adminPrefix(prefix string, fn callbackFunc) {
	r.prefixes = append(r.prefixes, prefixRoute{prefix: prefix, route: route{fn: fn, adminOnly: true}})
}

// match — точное совпадение важнее префикса
func (r *router) match(data string) (route, string, bool) {
	if rt, ok := r.exact[data]; ok {
		return rt, "", true
	}
	for _, p := range r.prefixes {
		if strings.HasPrefix(data, p.prefix) {
			arg := strings.TrimPrefix(data, p.prefix)
			if arg == "" {
				continue
			}
			return p.route, arg, true
		}
	}
	return route{}, "", false
}

func (b *Bot) buildRoutes() *router {
	r := newRouter()

	// меню
	r.on(cbMainMenu, b.cbMainMenu)
	r.on(cbMenuSchedule, b.cbSchedule)
	r.on(cbMenuHelp, b.cbHelp)
	r.on(cbMenuStats, b.cbStats)
	r.on(cbMenuSettings, b.cbSettings)

	// настройки пользователя
	r.on(cbSettingsRegion, b.cbSettingsRegion)
	r.on(cbSettingsAlerts, b.cbAlerts)
	r.on(cbAlertToggle, b.cbAlertToggle)
	r.onPrefix(cbAlertTimePref, b.cbAlertTime)
	r.on(cbSettingsNotify, b.cbNotifyMenu)
	r.on(cbNotifyBot, b.cbNotifyTarget)
	r.on(cbNotifyChannel, b.cbNotifyTarget)
	r.on(cbNotifyBoth, b.cbNotifyTarget)
	r.on(cbWizardNotifyBot, b.cbWizardNotify)
	r.on(cbWizardNotifyChannel, b.cbWizardNotify)
	r.on(cbSettingsIP, b.cbRouterIP)
	r.on(cbIPClear, b.cbRouterIPClear)
	r.on(cbSettingsFormat, b.cbFormat)
	r.on(cbFormatDeleteToggle, b.cbFormatDeleteToggle)
	r.on(cbFormatCaption, b.cbFormatInput)
	r.on(cbFormatPeriod, b.cbFormatInput)
	r.on(cbFormatPowerOff, b.cbFormatInput)
	r.on(cbFormatPowerOn, b.cbFormatInput)
	r.on(cbFormatReset, b.cbFormatReset)
	r.on(cbFormatNoop, func(telebot.Context, string) error { return nil })
	r.on(cbFormatTest, b.cbTestMenu)
	r.on(cbTestSchedule, b.cbTestSchedule)
	r.on(cbTestPower, b.cbTestPower)
	r.on(cbDeleteAccount, b.cbDeleteAccount)
	r.on(cbDeleteConfirm, b.cbDeleteConfirm)

	// канал
	r.on(cbSettingsChannel, b.cbChannel)
	r.on(cbChannelConnect, b.cbChannelConnect)
	r.onPrefix(cbChannelConfirmPref, b.cbChannelConfirm)
	r.on(cbChannelDisconnect, b.cbChannelDisconnect)

	// админ-панель
	r.admin(cbAdminPanel, b.cbAdminPanel)
	r.admin(cbAdminStats, b.cbAdminStats)
	r.admin(cbAdminIntervals, b.cbAdminIntervals)
	r.adminPrefix(cbAdminSchedulePref, b.cbAdminScheduleInterval)
	r.adminPrefix(cbAdminIPPref, b.cbAdminPowerInterval)
	r.admin(cbAdminPause, b.cbAdminPause)
	r.admin(cbPauseToggle, b.cbPauseToggle)
	r.admin(cbPauseMessage, b.cbPauseMessage)
	r.adminPrefix(cbPauseTemplatePref, b.cbPauseTemplate)
	r.admin(cbPauseCustom, b.cbPauseCustom)

	return r
}

// answered — запоминает, ответил ли обработчик на callback сам
type answered struct {
	telebot.Context
	done bool
}

func (a *answered) Respond(resp ...*telebot.CallbackResponse) error {
	a.done = true
	return a.Context.Respond(resp...)
}

// onCallback — единая точка входа для inline-кнопок
func (b *Bot) onCallback(c telebot.Context) error {
	cb := c.Callback()
	if cb == nil {
		return nil
	}
	data := strings.TrimSpace(cb.Data)
	ac := &answered{Context: c}

	err := b.dispatch(ac, data)
	if !ac.done {
		if rerr := c.Respond(); rerr != nil {
			b.logger.Debug("callback respond failed", slog.String("err", rerr.Error()))
		}
	}
	if err != nil {
		b.logger.Error("callback failed",
			slog.String("telegram_id", senderID(c)),
			slog.String("data", data),
			slog.String("err", err.Error()),
		)
	}
	return err
}

func (b *Bot) dispatch(c telebot.Context, data string) error {
	if ev, ok := wizard.ParseEvent(data); ok {
		return b.handleWizardEvent(c, ev)
	}

	rt, arg, ok := b.routes.match(data)
	if !ok {
		b.logger.Debug("callback: unknown data",
			slog.String("telegram_id", senderID(c)),
			slog.String("data", data),
		)
		return nil
	}
	if rt.adminOnly && !b.isAdmin(c) {
		b.logger.Warn("callback: admin action denied",
			slog.String("telegram_id", senderID(c)),
			slog.String("data", data),
		)
		return c.Respond(&telebot.CallbackResponse{Text: textAccessDenied, ShowAlert: true})
	}
	return rt.fn(c, arg)
}

// alert — всплывающее сообщение в ответ на callback
func alert(c telebot.Context, text string) error {
	return c.Respond(&telebot.CallbackResponse{Text: text, ShowAlert: true})
}

// toast — короткое уведомление без окна
func toast(c telebot.Context, text string) error {
	return c.Respond(&telebot.CallbackResponse{Text: text})
}
