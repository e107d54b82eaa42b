// Package access решает, есть ли у пользователя права администратора.
//
// Владелец (owner) привилегирован всегда, даже если его нет в списке админов.
// Пустой идентификатор не привилегирован никогда.
package access

import (
	"slices"
	"strconv"
	"strings"
)

// Policy - список администраторов и необязательный владелец.
// Пустой Owner отключает проверку владельца: остаётся только членство в списке.
type Policy struct {
	Admins []string
	Owner  string
}

// NewPolicy - политика из конфигурации; пробелы и пустые значения отбрасываются
func NewPolicy(admins []string, owner string) Policy {
	clean := make([]string, 0, len(admins))
	for _, a := range admins {
		if a = strings.TrimSpace(a); a != "" {
			clean = append(clean, a)
		}
	}
	return Policy{Admins: clean, Owner: strings.TrimSpace(owner)}
}

// IsAdmin - владелец или член списка администраторов
func (p Policy) IsAdmin(id string) bool {
	return IsPrivileged(id, p.Admins, p.Owner)
}

// IsAdminID - то же для числового telegram id
func (p Policy) IsAdminID(id int64) bool {
	if id == 0 {
		return false
	}
	return p.IsAdmin(strconv.FormatInt(id, 10))
}

// IsPrivileged - owner == id при непустом owner, иначе членство в roster
func IsPrivileged(id string, roster []string, owner string) bool {
	if id == "" {
		return false
	}
	if owner != "" && id == owner {
		return true
	}
	return InRoster(id, roster)
}

// InRoster - только членство в списке, без учёта владельца
func InRoster(id string, roster []string) bool {
	if id == "" {
		return false
	}
	return slices.Contains(roster, id)
}
