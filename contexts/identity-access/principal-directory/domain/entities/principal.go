package entities

import "time"

type Role string

const (
	RoleClient  Role = "client"
	RoleCreator Role = "creator"
)

type Tier string

const (
	TierBasic    Tier = "basic"
	TierInventor Tier = "inventor"
	TierGuru     Tier = "guru"
)

// Principal is one directory account: a buyer by default, a seller once it
// carries the creator role and a paid tier.
type Principal struct {
	PrincipalID string
	Username    string
	Email       string
	Role        Role
	Tier        Tier
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanCreateListings reports whether the principal may list items for sale.
// The basic tier is buy-only even for creators.
func (p Principal) CanCreateListings() bool {
	return p.IsActive && p.Role == RoleCreator && p.Tier != TierBasic
}

func IsValidRole(role Role) bool {
	switch role {
	case RoleClient, RoleCreator:
		return true
	default:
		return false
	}
}

func IsValidTier(tier Tier) bool {
	switch tier {
	case TierBasic, TierInventor, TierGuru:
		return true
	default:
		return false
	}
}
