package reminder

import (
	"context"
	"log"

	"github.com/BruksfildServices01/baymax-health/internal/models"
)

// PreferenceCache is an optional read-through cache in front of the
// preference store. A hit with a nil record means "known absent".
type PreferenceCache interface {
	Get(ctx context.Context, userID uint) (prefs *models.EmailPreferences, hit bool, err error)
	Set(ctx context.Context, userID uint, prefs *models.EmailPreferences) error
	Invalidate(ctx context.Context, userID uint) error
}

type PreferenceResolver struct {
	store PreferenceStore
	cache PreferenceCache
}

func NewPreferenceResolver(store PreferenceStore, cache PreferenceCache) *PreferenceResolver {
	return &PreferenceResolver{store: store, cache: cache}
}

// Enabled reports whether the user accepts reminders of the category.
// Missing records, missing categories and lookup failures all count as
// enabled.
func (r *PreferenceResolver) Enabled(ctx context.Context, userID uint, category Category) bool {
	prefs, err := r.load(ctx, userID)
	if err != nil {
		log.Printf("preferences: lookup failed for user %d, defaulting to enabled: %v", userID, err)
		return true
	}
	if prefs == nil {
		return true
	}

	flag := enabledFlag(prefs, category)
	if flag == nil {
		return true
	}
	return *flag
}

func (r *PreferenceResolver) load(ctx context.Context, userID uint) (*models.EmailPreferences, error) {
	if r.cache != nil {
		prefs, hit, err := r.cache.Get(ctx, userID)
		if err == nil && hit {
			return prefs, nil
		}
		if err != nil {
			log.Printf("preferences: cache get user %d: %v", userID, err)
		}
	}

	prefs, err := r.store.FindPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, userID, prefs); err != nil {
			log.Printf("preferences: cache set user %d: %v", userID, err)
		}
	}
	return prefs, nil
}
