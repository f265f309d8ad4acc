package services

import (
	"testing"

	"alertnet_backend/internal/dto"
	"alertnet_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityJoinAndLeave(t *testing.T) {
	users := newFakeUserRepo()
	communities := newFakeCommunityRepo()
	svc := NewCommunityService(communities, users)

	community := communities.add(&models.Community{Name: "Riverside", IsActive: true})
	user := users.add(&models.User{Email: "a@example.com", IsActive: true})

	require.NoError(t, svc.Join(user.ID, community.ID))
	require.NoError(t, svc.Join(user.ID, community.ID), "joining twice is a no-op")

	count, err := svc.MemberCount(community.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, svc.Leave(user.ID, community.ID))
	count, err = svc.MemberCount(community.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCommunityJoinInactive(t *testing.T) {
	users := newFakeUserRepo()
	communities := newFakeCommunityRepo()
	svc := NewCommunityService(communities, users)

	community := communities.add(&models.Community{Name: "Ghost Town", IsActive: false})
	user := users.add(&models.User{Email: "a@example.com", IsActive: true})

	assert.Error(t, svc.Join(user.ID, community.ID))
}

func TestCommunityCreateDuplicateName(t *testing.T) {
	svc := NewCommunityService(newFakeCommunityRepo(), newFakeUserRepo())

	_, err := svc.Create(dto.CreateCommunityRequest{Name: "Riverside"})
	require.NoError(t, err)

	_, err = svc.Create(dto.CreateCommunityRequest{Name: "Riverside"})
	assert.Error(t, err)
}

func TestCommunityCreateRequiresCoordinatePair(t *testing.T) {
	svc := NewCommunityService(newFakeCommunityRepo(), newFakeUserRepo())

	lat := 40.0
	_, err := svc.Create(dto.CreateCommunityRequest{Name: "Halfway", Latitude: &lat})
	assert.Error(t, err)
}
