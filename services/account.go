package services

import "strings"

// AccountKind says which unique column a login identifier resolves
// against.
type AccountKind int

const (
	AccountEmail AccountKind = iota
	AccountPhone
)

// ClassifyAccount decides how a login identifier is looked up: anything
// containing '@' is treated as an email, everything else as a phone
// number. This is deliberately a heuristic, not RFC validation.
func ClassifyAccount(account string) AccountKind {
	if strings.Contains(account, "@") {
		return AccountEmail
	}
	return AccountPhone
}
