package services

import (
	"strconv"
	"strings"

	"github.com/Jeffrey-mu/weight-loss/config"
	"github.com/Jeffrey-mu/weight-loss/models"
)

// AdminPolicy decides whether an identity holds admin privilege. It is
// built once at startup from configuration and never re-reads the
// environment.
type AdminPolicy struct {
	emails     map[string]struct{}
	phones     map[string]struct{}
	ids        map[uint]struct{}
	production bool
}

func NewAdminPolicy(o config.AdminOverrides, production bool) *AdminPolicy {
	p := &AdminPolicy{
		emails:     parseSet(o.Emails, o.Email),
		phones:     parseSet(o.Phones, o.Phone),
		ids:        make(map[uint]struct{}),
		production: production,
	}
	for raw := range parseSet(o.UserIDs, o.UserID) {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			p.ids[uint(id)] = struct{}{}
		}
	}
	return p
}

// parseSet splits comma-separated values, trims entries and drops
// empties; all arguments are unioned.
func parseSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, raw := range values {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				set[v] = struct{}{}
			}
		}
	}
	return set
}

func (p *AdminPolicy) hasExplicitConfig() bool {
	return len(p.emails) > 0 || len(p.phones) > 0 || len(p.ids) > 0
}

// IsAdmin applies the layered decision, first match wins:
//  1. the persisted role is authoritative
//  2. configured id/email/phone allow-lists
//  3. with no configured lists outside production, user id 1 is admin
//     as a development convenience
func (p *AdminPolicy) IsAdmin(u *models.User) bool {
	if u == nil {
		return false
	}
	if u.Role == models.RoleAdmin {
		return true
	}

	if !p.hasExplicitConfig() {
		return !p.production && u.ID == 1
	}

	if _, ok := p.ids[u.ID]; ok {
		return true
	}
	if u.Email != nil {
		if _, ok := p.emails[*u.Email]; ok {
			return true
		}
	}
	if u.Phone != nil {
		if _, ok := p.phones[*u.Phone]; ok {
			return true
		}
	}
	return false
}
