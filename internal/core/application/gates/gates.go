// Package gates contains the authorization checks that run between
// authentication and request handling. A gate inspects the signed-in user and
// either lets the request continue or redirects it elsewhere, typically to the
// account-state page while an account is awaiting review.
//
// Gates are pure decisions over the user aggregate; the HTTP layer translates
// them into responses.
package gates

import (
	"fooddelivery/internal/core/domain/model/user"
)

// AccountStatePath is where requests are redirected while the signed-in
// account is not Approved.
const AccountStatePath = "/account/state"

// Decision is the outcome of a gate check: either the request continues, or
// it is redirected to another path.
type Decision struct {
	allowed    bool
	redirectTo string
}

// Allow lets the request continue to the next gate or the handler.
func Allow() Decision {
	return Decision{allowed: true}
}

// Redirect stops the gate chain and sends the request to the given path.
func Redirect(to string) Decision {
	return Decision{redirectTo: to}
}

// Allowed reports whether the request may continue.
func (d Decision) Allowed() bool {
	return d.allowed
}

// RedirectTo returns the redirect target. Empty for allowed decisions.
func (d Decision) RedirectTo() string {
	return d.redirectTo
}

// Gate is a single authorization check over the signed-in user.
// A nil user means the request is anonymous.
type Gate interface {
	Check(u *user.User) Decision
}

// Chain runs gates in order; the first decision that is not Allow wins.
type Chain struct {
	gates []Gate
}

// NewChain creates a gate chain. Order matters: earlier gates run first.
func NewChain(gates ...Gate) Chain {
	return Chain{gates: gates}
}

// Check runs the chain and returns the first blocking decision, or Allow.
func (c Chain) Check(u *user.User) Decision {
	for _, g := range c.gates {
		if decision := g.Check(u); !decision.Allowed() {
			return decision
		}
	}
	return Allow()
}

// AccountStateGate blocks accounts that an admin has not approved yet.
// Pending and Declined accounts are redirected to the account-state page,
// where the only thing they can do is see their state. Anonymous requests
// pass through: authentication is a separate concern handled before gates.
type AccountStateGate struct{}

// NewAccountStateGate creates the account state gate.
func NewAccountStateGate() AccountStateGate {
	return AccountStateGate{}
}

// Check redirects any signed-in account that is not Approved.
func (AccountStateGate) Check(u *user.User) Decision {
	if u == nil {
		return Allow()
	}
	if u.State() != user.Approved {
		return Redirect(AccountStatePath)
	}
	return Allow()
}

// RoleGate blocks signed-in users that lack a required role.
type RoleGate struct {
	required user.Role
}

// NewRoleGate creates a gate requiring the given role.
func NewRoleGate(required user.Role) RoleGate {
	return RoleGate{required: required}
}

// Check redirects users without the required role to the account-state page.
// Anonymous requests pass through.
func (g RoleGate) Check(u *user.User) Decision {
	if u == nil {
		return Allow()
	}
	if !u.HasRole(g.required) {
		return Redirect(AccountStatePath)
	}
	return Allow()
}
