package admins

import "context"

// Decision is the explicit result of an admin capability check. Handlers never
// branch on a bare boolean; the pending state keeps "we could not verify"
// distinct from "verified and denied".
type Decision int

const (
	// DecisionPending means the capability could not be established, usually
	// because the lookup failed. Callers must fail closed.
	DecisionPending Decision = iota
	// DecisionDenied means the user was checked and has no admin grant.
	DecisionDenied
	// DecisionAuthorized means the user holds an admin grant.
	DecisionAuthorized
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d {
	case DecisionAuthorized:
		return "authorized"
	case DecisionDenied:
		return "denied"
	default:
		return "pending"
	}
}

// Checker resolves whether a user holds back-office access.
type Checker interface {
	Check(ctx context.Context, userID string) (Decision, error)
}
