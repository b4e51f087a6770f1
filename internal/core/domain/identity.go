package domain

import "errors"

var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")

// Identity is the decoded identity+role payload carried by a token.
// It is attached to the request context by the auth middleware and
// consumed by the policy predicates below.
type Identity struct {
	SubjectID string
	Role      string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IsOwnerOrAdmin reports whether the identity may act on the resource
// owned by targetID: admins always may, everyone else only on their own
// account. Pure string comparison, no I/O.
func (i Identity) IsOwnerOrAdmin(targetID string) bool {
	if i.IsAdmin() {
		return true
	}
	return i.SubjectID != "" && i.SubjectID == targetID
}
