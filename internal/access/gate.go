// Package access decides whether an identity may act on a resource.
package access

import (
	"github.com/stpnv0/StayBooker/internal/domain"
)

type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

func (a Action) IsRead() bool {
	return a == ActionList || a == ActionRetrieve
}

// Authorize applies the public-resource rule: reads are open to anonymous
// callers, mutations need an identity, and mutations of an owned resource
// need the identity to be its owner. actorID is empty for anonymous callers.
// resource may be nil for collection-level actions such as create.
func Authorize(actorID string, resource domain.Owned, action Action) error {
	if action.IsRead() {
		return nil
	}
	if actorID == "" {
		return domain.ErrUnauthenticated
	}
	if resource != nil && resource.OwnerIdentity() != actorID {
		return domain.ErrForbidden
	}
	return nil
}

// RequireIdentity is the rule for private resources (wishlists, own
// bookings, chats): every action, reads included, needs an identity.
// Queries are then filtered to the actor's records by the caller.
func RequireIdentity(actorID string) error {
	if actorID == "" {
		return domain.ErrUnauthenticated
	}
	return nil
}
