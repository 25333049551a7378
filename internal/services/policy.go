package services

import (
	"fmt"

	"movieapi/internal/config"
)

// Action is a user-resource mutation subject to the access policy.
type Action string

const (
	ActionUpdateUser    Action = "update user"
	ActionDeleteUser    Action = "delete user"
	ActionEditFavorites Action = "edit favorites"
)

// AccessPolicy decides which routes need a session and which mutations are
// restricted to the owning user.
type AccessPolicy struct {
	PublicCatalog      bool
	PublicUserList     bool
	OwnerOnlyDelete    bool
	OwnerOnlyFavorites bool
}

// NewAccessPolicy builds the policy from configuration.
func NewAccessPolicy(p config.Policy) AccessPolicy {
	return AccessPolicy{
		PublicCatalog:      p.PublicCatalog,
		PublicUserList:     p.PublicUserList,
		OwnerOnlyDelete:    p.OwnerOnlyDelete,
		OwnerOnlyFavorites: p.OwnerOnlyFavorites,
	}
}

// Authorize returns ErrForbidden when actor may not perform action on the
// record owned by owner. Updates are always owner-only.
func (p AccessPolicy) Authorize(action Action, actor, owner string) error {
	ownerOnly := true
	switch action {
	case ActionDeleteUser:
		ownerOnly = p.OwnerOnlyDelete
	case ActionEditFavorites:
		ownerOnly = p.OwnerOnlyFavorites
	}

	if ownerOnly && actor != owner {
		return fmt.Errorf("%s cannot %s %s: %w", actor, action, owner, ErrForbidden)
	}
	return nil
}
