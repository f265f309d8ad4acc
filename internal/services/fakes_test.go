package services

import (
	"time"

	"alertnet_backend/internal/channels"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository doubles shared by the service tests.

type fakeUserRepo struct {
	users      map[string]*models.User
	membership map[string]map[string]bool // communityID -> userID set
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:      map[string]*models.User{},
		membership: map[string]map[string]bool{},
	}
}

func (f *fakeUserRepo) add(u *models.User, communityIDs ...string) *models.User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.users[u.ID] = u
	for _, cid := range communityIDs {
		if f.membership[cid] == nil {
			f.membership[cid] = map[string]bool{}
		}
		f.membership[cid][u.ID] = true
	}
	return u
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.add(u)
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Update(u *models.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdateFields(id string, fields map[string]interface{}) error {
	if _, ok := f.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	return nil
}

func (f *fakeUserRepo) FindCommunityRecipients(communityID string, channel models.NotificationChannel) ([]models.User, error) {
	var out []models.User
	for uid := range f.membership[communityID] {
		u := f.users[uid]
		if u != nil && u.IsActive && u.ChannelEnabled(channel) {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) AddToCommunity(userID, communityID string) error {
	if f.membership[communityID] == nil {
		f.membership[communityID] = map[string]bool{}
	}
	f.membership[communityID][userID] = true
	return nil
}

func (f *fakeUserRepo) RemoveFromCommunity(userID, communityID string) error {
	delete(f.membership[communityID], userID)
	return nil
}

func (f *fakeUserRepo) IsMember(userID, communityID string) (bool, error) {
	return f.membership[communityID][userID], nil
}

func (f *fakeUserRepo) CountByCommunity(communityID string) (int64, error) {
	return int64(len(f.membership[communityID])), nil
}

type fakeDeviceRepo struct {
	devices map[string]*models.Device // keyed by token
}

func newFakeDeviceRepo() *fakeDeviceRepo {
	return &fakeDeviceRepo{devices: map[string]*models.Device{}}
}

func (f *fakeDeviceRepo) Create(d *models.Device) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	f.devices[d.Token] = d
	return nil
}

func (f *fakeDeviceRepo) Update(d *models.Device) error {
	f.devices[d.Token] = d
	return nil
}

func (f *fakeDeviceRepo) FindByUserAndToken(userID, token string) (*models.Device, error) {
	if d, ok := f.devices[token]; ok && d.UserID == userID {
		return d, nil
	}
	return nil, repositories.ErrDeviceNotFound
}

func (f *fakeDeviceRepo) FindActiveByUser(userID string) ([]models.Device, error) {
	var out []models.Device
	for _, d := range f.devices {
		if d.UserID == userID && d.IsActive {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDeviceRepo) DeleteByUserAndToken(userID, token string) (int64, error) {
	if d, ok := f.devices[token]; ok && d.UserID == userID {
		delete(f.devices, token)
		return 1, nil
	}
	return 0, nil
}

func (f *fakeDeviceRepo) DeactivateTokens(tokens []string) (int64, error) {
	var n int64
	for _, t := range tokens {
		if d, ok := f.devices[t]; ok && d.IsActive {
			d.IsActive = false
			n++
		}
	}
	return n, nil
}

func (f *fakeDeviceRepo) DeactivateLastUsedBefore(cutoff time.Time) (int64, error) {
	var n int64
	for _, d := range f.devices {
		if d.IsActive && d.LastUsedAt.Before(cutoff) {
			d.IsActive = false
			n++
		}
	}
	return n, nil
}

type fakeNotificationRepo struct {
	records []models.Notification
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	f.records = append(f.records, *n)
	return nil
}

func (f *fakeNotificationRepo) FindByID(id string) (*models.Notification, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) FindByUser(userID string, limit, offset int) ([]models.Notification, int64, error) {
	var out []models.Notification
	for _, n := range f.records {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeNotificationRepo) FindByAlert(alertID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.records {
		if n.AlertID != nil && *n.AlertID == alertID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkDelivered(id string) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].Status = models.NotificationDelivered
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	kept := f.records[:0]
	var n int64
	for _, r := range f.records {
		if r.CreatedAt.Before(cutoff) {
			n++
			continue
		}
		kept = append(kept, r)
	}
	f.records = kept
	return n, nil
}

func (f *fakeNotificationRepo) CountByStatus(status models.NotificationStatus) (int64, error) {
	var n int64
	for _, r := range f.records {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) byStatus(status models.NotificationStatus) []models.Notification {
	var out []models.Notification
	for _, r := range f.records {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

type fakeAlertRepo struct {
	alerts map[string]*models.Alert
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{alerts: map[string]*models.Alert{}}
}

func (f *fakeAlertRepo) Create(a *models.Alert) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	f.alerts[a.ID] = a
	return nil
}

func (f *fakeAlertRepo) FindByID(id string) (*models.Alert, error) {
	if a, ok := f.alerts[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, repositories.ErrAlertNotFound
}

func (f *fakeAlertRepo) Search(criteria repositories.AlertCriteria) ([]models.Alert, int64, error) {
	var out []models.Alert
	for _, a := range f.alerts {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAlertRepo) FindInBoundingBox(minLat, maxLat, minLng, maxLng float64) ([]models.Alert, error) {
	var out []models.Alert
	for _, a := range f.alerts {
		if a.IsPublic && a.Status == models.AlertStatusActive &&
			a.Latitude >= minLat && a.Latitude <= maxLat &&
			a.Longitude >= minLng && a.Longitude <= maxLng {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAlertRepo) Update(a *models.Alert) error {
	f.alerts[a.ID] = a
	return nil
}

func (f *fakeAlertRepo) UpdateStatus(id string, status models.AlertStatus, updatedBy string, resolvedAt *time.Time) error {
	a, ok := f.alerts[id]
	if !ok {
		return repositories.ErrAlertNotFound
	}
	a.Status = status
	a.UpdatedByID = &updatedBy
	a.ResolvedAt = resolvedAt
	return nil
}

func (f *fakeAlertRepo) Delete(id string) error {
	if _, ok := f.alerts[id]; !ok {
		return repositories.ErrAlertNotFound
	}
	delete(f.alerts, id)
	return nil
}

func (f *fakeAlertRepo) IncrementViewCount(id string) error {
	if a, ok := f.alerts[id]; ok {
		a.ViewCount++
		return nil
	}
	return repositories.ErrAlertNotFound
}

func (f *fakeAlertRepo) SetVoteCounts(id string, upvotes, downvotes int64) error {
	a, ok := f.alerts[id]
	if !ok {
		return repositories.ErrAlertNotFound
	}
	a.Upvotes = uint(upvotes)
	a.Downvotes = uint(downvotes)
	return nil
}

type fakeVoteRepo struct {
	votes map[string]*models.AlertVote
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: map[string]*models.AlertVote{}}
}

func (f *fakeVoteRepo) Find(alertID, userID string) (*models.AlertVote, error) {
	for _, v := range f.votes {
		if v.AlertID == alertID && v.UserID == userID {
			return v, nil
		}
	}
	return nil, repositories.ErrVoteNotFound
}

func (f *fakeVoteRepo) Create(v *models.AlertVote) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	f.votes[v.ID] = v
	return nil
}

func (f *fakeVoteRepo) Update(v *models.AlertVote) error {
	f.votes[v.ID] = v
	return nil
}

func (f *fakeVoteRepo) Delete(id string) error {
	if _, ok := f.votes[id]; !ok {
		return repositories.ErrVoteNotFound
	}
	delete(f.votes, id)
	return nil
}

func (f *fakeVoteRepo) CountByType(alertID string) (int64, int64, error) {
	var up, down int64
	for _, v := range f.votes {
		if v.AlertID != alertID {
			continue
		}
		if v.VoteType == models.VoteUp {
			up++
		} else {
			down++
		}
	}
	return up, down, nil
}

type fakeCommunityRepo struct {
	communities map[string]*models.Community
}

func newFakeCommunityRepo() *fakeCommunityRepo {
	return &fakeCommunityRepo{communities: map[string]*models.Community{}}
}

func (f *fakeCommunityRepo) add(c *models.Community) *models.Community {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	f.communities[c.ID] = c
	return c
}

func (f *fakeCommunityRepo) Create(c *models.Community) error {
	for _, existing := range f.communities {
		if existing.Name == c.Name {
			return repositories.ErrCommunityExists
		}
	}
	f.add(c)
	return nil
}

func (f *fakeCommunityRepo) FindByID(id string) (*models.Community, error) {
	if c, ok := f.communities[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrCommunityNotFound
}

func (f *fakeCommunityRepo) FindByName(name string) (*models.Community, error) {
	for _, c := range f.communities {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, repositories.ErrCommunityNotFound
}

func (f *fakeCommunityRepo) FindAll(activeOnly bool) ([]models.Community, error) {
	var out []models.Community
	for _, c := range f.communities {
		if !activeOnly || c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommunityRepo) Update(c *models.Community) error {
	f.communities[c.ID] = c
	return nil
}

func (f *fakeCommunityRepo) Delete(id string) error {
	delete(f.communities, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*models.AlertCategory
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*models.AlertCategory{}}
}

func (f *fakeCategoryRepo) add(c *models.AlertCategory) *models.AlertCategory {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	f.categories[c.ID] = c
	return c
}

func (f *fakeCategoryRepo) Create(c *models.AlertCategory) error {
	f.add(c)
	return nil
}

func (f *fakeCategoryRepo) FindByID(id string) (*models.AlertCategory, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindAll(activeOnly bool) ([]models.AlertCategory, error) {
	var out []models.AlertCategory
	for _, c := range f.categories {
		if !activeOnly || c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(c *models.AlertCategory) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Delete(id string) error {
	delete(f.categories, id)
	return nil
}

// fakeSender records what it was asked to deliver and answers from a
// script keyed by user id.
type fakeSender struct {
	channel models.NotificationChannel
	results map[string]channels.DeliveryResult
	sent    []string // user ids in call order
}

func newFakeSender(channel models.NotificationChannel) *fakeSender {
	return &fakeSender{
		channel: channel,
		results: map[string]channels.DeliveryResult{},
	}
}

func (f *fakeSender) Channel() models.NotificationChannel { return f.channel }

func (f *fakeSender) Send(user *models.User, content channels.Content) channels.DeliveryResult {
	f.sent = append(f.sent, user.ID)
	if r, ok := f.results[user.ID]; ok {
		return r
	}
	return channels.DeliveryResult{Delivered: true}
}
