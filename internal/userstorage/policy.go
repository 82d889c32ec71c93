package userstorage

import "fmt"

// PasswordPolicy selects how a user's password link is exposed
type PasswordPolicy string

const (
	// PasswordLinkOnly exposes only the id of the linked secret in User.PasswordID.
	// No extra storage read; callers resolve the secret themselves when needed.
	PasswordLinkOnly PasswordPolicy = "link"

	// PasswordResolved additionally reads the linked secret record and exposes
	// its value in User.Password. Costs one extra storage read per user lookup.
	PasswordResolved PasswordPolicy = "resolve"
)

// ParsePasswordPolicy parses a policy name
func ParsePasswordPolicy(s string) (PasswordPolicy, error) {
	switch p := PasswordPolicy(s); p {
	case PasswordLinkOnly, PasswordResolved:
		return p, nil
	default:
		return "", fmt.Errorf("unknown password policy %q (expected %q or %q)", s, PasswordLinkOnly, PasswordResolved)
	}
}
