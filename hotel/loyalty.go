/*
loyalty.go - Loyalty accounts, tiers, and redemptions

PURPOSE:
  A LoyaltyAccount tracks a point balance, a tier derived purely from
  that balance, and free nights earned. Owned by exactly one guest and
  created lazily on first enrollment.

TIER RULES:
  Ordered thresholds, highest first:
    points >= 1000 -> Gold
    points >=  500 -> Silver
    otherwise      -> Basic
  The tier is recomputed on every point mutation.

ATOMICITY:
  Point mutations (add/redeem/earn-free-night) hold the account mutex
  so concurrent callers cannot lose updates.

SEE ALSO:
  - invoice.go: Loyalty discount reads the balance but never redeems it
  - guest.go: Lazy enrollment
*/
package hotel

import "sync"

// =============================================================================
// TIERS
// =============================================================================

type LoyaltyTier string

const (
	TierBasic  LoyaltyTier = "Basic"
	TierSilver LoyaltyTier = "Silver"
	TierGold   LoyaltyTier = "Gold"
)

const (
	tierSilverThreshold = 500
	tierGoldThreshold   = 1000
	freeNightCost       = 200
)

// TierForPoints derives the tier from a point balance.
func TierForPoints(points int) LoyaltyTier {
	switch {
	case points >= tierGoldThreshold:
		return TierGold
	case points >= tierSilverThreshold:
		return TierSilver
	default:
		return TierBasic
	}
}

// =============================================================================
// LOYALTY ACCOUNT
// =============================================================================

type LoyaltyAccount struct {
	mu               sync.Mutex
	points           int
	tier             LoyaltyTier
	freeNightsEarned int
}

func NewLoyaltyAccount() *LoyaltyAccount {
	return &LoyaltyAccount{tier: TierBasic}
}

func (a *LoyaltyAccount) Points() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.points
}

func (a *LoyaltyAccount) Tier() LoyaltyTier {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tier
}

func (a *LoyaltyAccount) FreeNightsEarned() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.freeNightsEarned
}

// AddPoints credits points to the account and recomputes the tier.
func (a *LoyaltyAccount) AddPoints(n int) error {
	if n < 0 {
		return &ArgumentError{Field: "points", Reason: "must not be negative"}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.points += n
	a.tier = TierForPoints(a.points)
	return nil
}

// RedeemPoints debits points. Fails with InsufficientBalance if the
// balance is too low; the balance is left untouched on failure.
func (a *LoyaltyAccount) RedeemPoints(n int) error {
	if n < 0 {
		return &ArgumentError{Field: "points", Reason: "must not be negative"}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if n > a.points {
		return &InsufficientBalanceError{Available: a.points, Requested: n}
	}
	a.points -= n
	a.tier = TierForPoints(a.points)
	return nil
}

// EarnFreeNight converts 200 points into one free night. Returns false
// when the balance is below the threshold; that is a normal negative
// outcome, not an error.
func (a *LoyaltyAccount) EarnFreeNight() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.points < freeNightCost {
		return false
	}
	a.points -= freeNightCost
	a.freeNightsEarned++
	a.tier = TierForPoints(a.points)
	return true
}
