package wizard

import "errors"

// ErrCommitFailed - не удалось сохранить пользователя на подтверждении; сессия сохранена для повтора
var ErrCommitFailed = errors.New("wizard commit failed")
