package services

import (
	"testing"

	"alertnet_backend/internal/config"
	"alertnet_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestMembershipResolver(t *testing.T) {
	users := newFakeUserRepo()
	communityID := "riverside"

	inBoth := users.add(&models.User{
		Email: "both@example.com", IsActive: true,
		EmailNotifications: true, PushNotifications: true,
	}, communityID)
	emailOnly := users.add(&models.User{
		Email: "email@example.com", IsActive: true,
		EmailNotifications: true,
	}, communityID)
	users.add(&models.User{
		Email: "optout@example.com", IsActive: true,
	}, communityID)
	users.add(&models.User{
		Email: "inactive@example.com", IsActive: false,
		EmailNotifications: true,
	}, communityID)
	users.add(&models.User{
		Email: "elsewhere@example.com", IsActive: true,
		EmailNotifications: true,
	}, "other-community")

	resolver := NewRecipientResolver(config.ResolverMembership, users, 10)
	alert := &models.Alert{CommunityID: communityID}

	emailRecipients, err := resolver.Resolve(alert, models.ChannelEmail)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{inBoth.ID, emailOnly.ID},
		recipientIDs(emailRecipients))

	pushRecipients, err := resolver.Resolve(alert, models.ChannelPush)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{inBoth.ID}, recipientIDs(pushRecipients))
}

func TestRadiusResolverExcludesUsersWithoutLocation(t *testing.T) {
	users := newFakeUserRepo()
	communityID := "riverside"

	users.add(&models.User{
		Email: "nowhere@example.com", IsActive: true,
		EmailNotifications: true, NotificationRadiusKm: 50,
	}, communityID)

	resolver := NewRecipientResolver(config.ResolverRadius, users, 10)
	alert := &models.Alert{CommunityID: communityID, Latitude: 0, Longitude: 0}

	recipients, err := resolver.Resolve(alert, models.ChannelEmail)
	require.NoError(t, err)
	assert.Empty(t, recipients, "user without a location must never be selected")
}

func TestRadiusResolverDistanceCutoff(t *testing.T) {
	users := newFakeUserRepo()
	communityID := "riverside"

	// ~0.89 km north of the alert.
	near := users.add(&models.User{
		Email: "near@example.com", IsActive: true, EmailNotifications: true,
		Latitude: ptr(0.008), Longitude: ptr(0.0), NotificationRadiusKm: 1.0,
	}, communityID)

	// ~5 km north with a 1 km radius: out under radius policy.
	far := users.add(&models.User{
		Email: "far@example.com", IsActive: true, EmailNotifications: true,
		Latitude: ptr(0.045), Longitude: ptr(0.0), NotificationRadiusKm: 1.0,
	}, communityID)

	alert := &models.Alert{CommunityID: communityID, Latitude: 0, Longitude: 0}

	radius := NewRecipientResolver(config.ResolverRadius, users, 10)
	recipients, err := radius.Resolve(alert, models.ChannelEmail)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{near.ID}, recipientIDs(recipients))

	// Membership policy ignores distance entirely.
	membership := NewRecipientResolver(config.ResolverMembership, users, 10)
	recipients, err = membership.Resolve(alert, models.ChannelEmail)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{near.ID, far.ID}, recipientIDs(recipients))
}

func TestRadiusResolverSystemCap(t *testing.T) {
	users := newFakeUserRepo()
	communityID := "riverside"

	// 20 km away, personal radius 50 km, but the system cap is 10 km.
	users.add(&models.User{
		Email: "wide@example.com", IsActive: true, EmailNotifications: true,
		Latitude: ptr(0.18), Longitude: ptr(0.0), NotificationRadiusKm: 50,
	}, communityID)

	resolver := NewRecipientResolver(config.ResolverRadius, users, 10)
	alert := &models.Alert{CommunityID: communityID, Latitude: 0, Longitude: 0}

	recipients, err := resolver.Resolve(alert, models.ChannelEmail)
	require.NoError(t, err)
	assert.Empty(t, recipients)
}

func TestResolverUnknownPolicyFallsBackToMembership(t *testing.T) {
	resolver := NewRecipientResolver("bogus", newFakeUserRepo(), 10)
	_, ok := resolver.(*MembershipResolver)
	assert.True(t, ok)
}

func recipientIDs(users []models.User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}
