package auth

import "storefront/internal/model"

// Decision is the outcome of a role check.
type Decision int

const (
	// DecisionAuthorized grants access.
	DecisionAuthorized Decision = iota
	// DecisionUnauthorized means no authenticated identity was presented.
	DecisionUnauthorized
	// DecisionForbidden means the identity is valid but the role is insufficient.
	DecisionForbidden
)

// Authorize gates an authenticated role against a required role. It is a
// pure function: admin satisfies every requirement, any known role
// satisfies "user", and an empty role means the caller never
// authenticated.
func Authorize(role, required string) Decision {
	if role == "" {
		return DecisionUnauthorized
	}
	if role == required || role == model.RoleAdmin {
		return DecisionAuthorized
	}
	return DecisionForbidden
}
