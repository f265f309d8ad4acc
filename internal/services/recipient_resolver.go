package services

import (
	"alertnet_backend/internal/config"
	"alertnet_backend/internal/geo"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/repositories"
)

// RecipientResolver decides which users should hear about an alert over
// a given channel. Two policies exist; which one runs is fixed by
// configuration at startup, never per call.
type RecipientResolver interface {
	Resolve(alert *models.Alert, channel models.NotificationChannel) ([]models.User, error)
}

// NewRecipientResolver picks the policy implementation named in config.
// Unknown names fall back to membership, the wider of the two.
func NewRecipientResolver(policy string, users repositories.UserRepository, maxRadiusKm float64) RecipientResolver {
	if policy == config.ResolverRadius {
		return &RadiusResolver{users: users, maxRadiusKm: maxRadiusKm}
	}
	return &MembershipResolver{users: users}
}

// MembershipResolver notifies every active community member that has
// the channel enabled.
type MembershipResolver struct {
	users repositories.UserRepository
}

func (r *MembershipResolver) Resolve(alert *models.Alert, channel models.NotificationChannel) ([]models.User, error) {
	return r.users.FindCommunityRecipients(alert.CommunityID, channel)
}

// RadiusResolver narrows the membership set to users whose registered
// location lies within their own notification radius of the alert,
// capped by the system-wide max. Users without a location are never
// selected.
type RadiusResolver struct {
	users       repositories.UserRepository
	maxRadiusKm float64
}

func (r *RadiusResolver) Resolve(alert *models.Alert, channel models.NotificationChannel) ([]models.User, error) {
	candidates, err := r.users.FindCommunityRecipients(alert.CommunityID, channel)
	if err != nil {
		return nil, err
	}

	selected := make([]models.User, 0, len(candidates))
	for _, u := range candidates {
		if !u.HasLocation() {
			continue
		}
		radius := u.NotificationRadiusKm
		if radius > r.maxRadiusKm {
			radius = r.maxRadiusKm
		}
		d := geo.Distance(*u.Latitude, *u.Longitude, alert.Latitude, alert.Longitude)
		if d <= radius {
			selected = append(selected, u)
		}
	}
	return selected, nil
}
