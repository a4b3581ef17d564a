package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"landivo-be/internal/dto"
	"landivo-be/internal/entity"
	"landivo-be/internal/pkg/apperror"
	"landivo-be/internal/pkg/mailer"
	"landivo-be/internal/repository/contract"
	"landivo-be/internal/repository/specification"
	"landivo-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories backing the deletion workflow tests. They share one
// store guarded by a single mutex, so TransitionStatus behaves like the
// conditional UPDATE it stands in for: under concurrent callers exactly one
// transition out of PENDING succeeds.

type deletionStore struct {
	mu         sync.Mutex
	properties map[uuid.UUID]*entity.Property
	requests   map[uuid.UUID]*entity.DeletionRequest
}

func newDeletionStore() *deletionStore {
	return &deletionStore{
		properties: make(map[uuid.UUID]*entity.Property),
		requests:   make(map[uuid.UUID]*entity.DeletionRequest),
	}
}

func (s *deletionStore) addProperty(p entity.Property) *entity.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	s.properties[cp.Id] = &cp
	return &cp
}

func (s *deletionStore) addRequest(r entity.DeletionRequest) *entity.DeletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := r
	s.requests[cp.Id] = &cp
	return &cp
}

func (s *deletionStore) requestByToken(token string) *entity.DeletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.Token == token {
			cp := *r
			return &cp
		}
	}
	return nil
}

func (s *deletionStore) hasProperty(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.properties[id]
	return ok
}

type memDeletionRepo struct {
	store *deletionStore
}

func matchDeletion(r *entity.DeletionRequest, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if r.Id != s.ID {
				return false
			}
		case specification.ByToken:
			if r.Token != s.Token {
				return false
			}
		case specification.ByPropertyID:
			if r.PropertyId != s.PropertyID {
				return false
			}
		case specification.ByDeletionStatus:
			if string(r.Status) != s.Status {
				return false
			}
		case specification.ByBatchID:
			if r.BatchId == nil || *r.BatchId != s.BatchID {
				return false
			}
		}
	}
	return true
}

func (m *memDeletionRepo) Create(_ context.Context, request *entity.DeletionRequest) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	cp := *request
	m.store.requests[cp.Id] = &cp
	return nil
}

func (m *memDeletionRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.DeletionRequest, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for _, r := range m.store.requests {
		if matchDeletion(r, specs) {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memDeletionRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.DeletionRequest, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	var res []*entity.DeletionRequest
	for _, r := range m.store.requests {
		if matchDeletion(r, specs) {
			cp := *r
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (m *memDeletionRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	var n int64
	for _, r := range m.store.requests {
		if matchDeletion(r, specs) {
			n++
		}
	}
	return n, nil
}

func (m *memDeletionRepo) TransitionStatus(_ context.Context, token string, from, to entity.DeletionStatus, resolvedAt *time.Time) (bool, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for _, r := range m.store.requests {
		if r.Token != token {
			continue
		}
		if r.Status != from {
			return false, nil
		}
		r.Status = to
		if resolvedAt != nil {
			r.ApprovedAt = resolvedAt
		}
		return true, nil
	}
	return false, nil
}

func (m *memDeletionRepo) DeletePendingByPropertyId(_ context.Context, propertyId uuid.UUID, keepId uuid.UUID) (int64, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	var n int64
	for id, r := range m.store.requests {
		if r.PropertyId == propertyId && r.Status == entity.DeletionStatusPending && r.Id != keepId {
			delete(m.store.requests, id)
			n++
		}
	}
	return n, nil
}

type memPropertyRepo struct {
	store *deletionStore
}

func (m *memPropertyRepo) Create(_ context.Context, property *entity.Property) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	cp := *property
	m.store.properties[cp.Id] = &cp
	return nil
}

func (m *memPropertyRepo) Update(_ context.Context, property *entity.Property) error {
	return m.Create(context.Background(), property)
}

func (m *memPropertyRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	delete(m.store.properties, id)
	return nil
}

func (m *memPropertyRepo) DeleteUnscoped(ctx context.Context, id uuid.UUID) error {
	return m.Delete(ctx, id)
}

func (m *memPropertyRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Property, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for _, p := range m.store.properties {
		if matchProperty(p, specs) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memPropertyRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Property, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	var res []*entity.Property
	for _, p := range m.store.properties {
		if matchProperty(p, specs) {
			cp := *p
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (m *memPropertyRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := m.FindAll(context.Background(), specs...)
	return int64(len(all)), nil
}

func (m *memPropertyRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.PropertyStatus) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if p, ok := m.store.properties[id]; ok {
		p.Status = status
	}
	return nil
}

func (m *memPropertyRepo) IncrementViewCount(_ context.Context, id uuid.UUID) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if p, ok := m.store.properties[id]; ok {
		p.ViewCount++
	}
	return nil
}

func matchProperty(p *entity.Property, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if p.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

type memUow struct {
	store *deletionStore
}

func (u *memUow) Begin(_ context.Context) error { return nil }
func (u *memUow) Commit() error                 { return nil }
func (u *memUow) Rollback() error               { return nil }

func (u *memUow) UserRepository() contract.UserRepository { return nil }
func (u *memUow) PropertyRepository() contract.PropertyRepository {
	return &memPropertyRepo{store: u.store}
}
func (u *memUow) DeletionRequestRepository() contract.DeletionRequestRepository {
	return &memDeletionRepo{store: u.store}
}
func (u *memUow) BuyerRepository() contract.BuyerRepository                 { return nil }
func (u *memUow) OfferRepository() contract.OfferRepository                 { return nil }
func (u *memUow) QualificationRepository() contract.QualificationRepository { return nil }
func (u *memUow) EmailListRepository() contract.EmailListRepository         { return nil }
func (u *memUow) CampaignRepository() contract.CampaignRepository           { return nil }
func (u *memUow) DealRepository() contract.DealRepository                   { return nil }
func (u *memUow) SettingsRepository() contract.SettingsRepository           { return nil }

type memUowFactory struct {
	store *deletionStore
}

func (f *memUowFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return &memUow{store: f.store}
}

type recordingMailer struct {
	mu        sync.Mutex
	approvals []mailer.DeletionApprovalEmail
	bulk      int
}

func (m *recordingMailer) SendDeletionApprovalRequest(_ string, p mailer.DeletionApprovalEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.approvals = append(m.approvals, p)
	return nil
}

func (m *recordingMailer) SendBulkDeletionApprovalRequest(_ string, _ []string, _ mailer.DeletionApprovalEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bulk++
	return nil
}

func (m *recordingMailer) SendOfferAlert(string, mailer.OfferAlertEmail) error { return nil }
func (m *recordingMailer) SendResetToken(string, string) error                 { return nil }
func (m *recordingMailer) SendCampaignEmail(string, string, string) error      { return nil }

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newTestDeletionService(store *deletionStore) (IDeletionService, *recordingMailer) {
	m := &recordingMailer{}
	svc := NewDeletionService(
		&memUowFactory{store: store}, m, nil, nopLogger{},
		"http://localhost:3000", "admin@landivo.local", 72,
	)
	return svc, m
}

func soldProperty() entity.Property {
	return entity.Property{
		Id:            uuid.New(),
		Title:         "Test Parcel",
		StreetAddress: "0 Ranch Rd",
		City:          "Marfa",
		State:         "TX",
		Zip:           "79843",
		AskingPrice:   24500,
		Status:        entity.PropertyStatusSold,
	}
}

func pendingRequest(propertyId uuid.UUID) entity.DeletionRequest {
	return entity.DeletionRequest{
		Id:              uuid.New(),
		PropertyId:      propertyId,
		Token:           uuid.NewString(),
		RequestedBy:     "agent@landivo.local",
		RequestedByName: "Agent",
		Status:          entity.DeletionStatusPending,
		ExpiresAt:       time.Now().Add(72 * time.Hour),
		CreatedAt:       time.Now(),
	}
}

func TestRequestDeletion(t *testing.T) {
	requester := Requester{Email: "agent@landivo.local", Identity: "u-1", Name: "Agent"}

	t.Run("unknown property", func(t *testing.T) {
		store := newDeletionStore()
		svc, _ := newTestDeletionService(store)

		_, err := svc.RequestDeletion(context.Background(), requester,
			&dto.CreateDeletionRequest{PropertyId: uuid.New()})
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("live listing is not deletable", func(t *testing.T) {
		store := newDeletionStore()
		p := soldProperty()
		p.Status = entity.PropertyStatusAvailable
		store.addProperty(p)
		svc, _ := newTestDeletionService(store)

		_, err := svc.RequestDeletion(context.Background(), requester,
			&dto.CreateDeletionRequest{PropertyId: p.Id})
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("second request while one is pending", func(t *testing.T) {
		store := newDeletionStore()
		p := store.addProperty(soldProperty())
		store.addRequest(pendingRequest(p.Id))
		svc, _ := newTestDeletionService(store)

		_, err := svc.RequestDeletion(context.Background(), requester,
			&dto.CreateDeletionRequest{PropertyId: p.Id})
		assert.True(t, apperror.IsInvalidState(err))
	})

	t.Run("creates a pending request with a token and TTL", func(t *testing.T) {
		store := newDeletionStore()
		p := store.addProperty(soldProperty())
		svc, _ := newTestDeletionService(store)

		res, err := svc.RequestDeletion(context.Background(), requester,
			&dto.CreateDeletionRequest{PropertyId: p.Id, Reason: "duplicate listing"})
		require.NoError(t, err)
		require.NotNil(t, res)

		assert.WithinDuration(t, time.Now().Add(72*time.Hour), res.ExpiresAt, time.Minute)

		store.mu.Lock()
		defer store.mu.Unlock()
		require.Len(t, store.requests, 1)
		for _, r := range store.requests {
			assert.Equal(t, entity.DeletionStatusPending, r.Status)
			assert.NotEmpty(t, r.Token)
			assert.Equal(t, "agent@landivo.local", r.RequestedBy)
			require.NotNil(t, r.Reason)
			assert.Equal(t, "duplicate listing", *r.Reason)
		}
	})
}

func TestApproveDeletion(t *testing.T) {
	t.Run("unknown token", func(t *testing.T) {
		store := newDeletionStore()
		svc, _ := newTestDeletionService(store)

		_, err := svc.ApproveDeletion(context.Background(), uuid.NewString())
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("already resolved token", func(t *testing.T) {
		store := newDeletionStore()
		p := store.addProperty(soldProperty())
		req := pendingRequest(p.Id)
		req.Status = entity.DeletionStatusRejected
		store.addRequest(req)
		svc, _ := newTestDeletionService(store)

		_, err := svc.ApproveDeletion(context.Background(), req.Token)
		assert.True(t, apperror.IsInvalidState(err))
		assert.EqualError(t, err, "deletion request already rejected")
		assert.True(t, store.hasProperty(p.Id), "property must survive a replayed token")
	})

	t.Run("expired token is marked EXPIRED and refused", func(t *testing.T) {
		store := newDeletionStore()
		p := store.addProperty(soldProperty())
		req := pendingRequest(p.Id)
		req.ExpiresAt = time.Now().Add(-time.Hour)
		store.addRequest(req)
		svc, _ := newTestDeletionService(store)

		_, err := svc.ApproveDeletion(context.Background(), req.Token)
		assert.True(t, apperror.IsExpiredToken(err))

		stored := store.requestByToken(req.Token)
		require.NotNil(t, stored)
		assert.Equal(t, entity.DeletionStatusExpired, stored.Status)
		assert.True(t, store.hasProperty(p.Id))

		// The lazy EXPIRED write is terminal: presenting the token again is
		// a state conflict, not another expiry.
		_, err = svc.ApproveDeletion(context.Background(), req.Token)
		assert.False(t, apperror.IsExpiredToken(err))
		assert.True(t, apperror.IsInvalidState(err))
		assert.EqualError(t, err, "deletion request link has expired")
	})

	t.Run("approval deletes the property", func(t *testing.T) {
		store := newDeletionStore()
		p := store.addProperty(soldProperty())
		req := store.addRequest(pendingRequest(p.Id))
		svc, _ := newTestDeletionService(store)

		res, err := svc.ApproveDeletion(context.Background(), req.Token)
		require.NoError(t, err)
		assert.Equal(t, p.Id, res.PropertyId)
		assert.Equal(t, string(entity.DeletionStatusApproved), res.Status)

		assert.False(t, store.hasProperty(p.Id))
		stored := store.requestByToken(req.Token)
		require.NotNil(t, stored)
		assert.Equal(t, entity.DeletionStatusApproved, stored.Status)
		assert.NotNil(t, stored.ApprovedAt)
	})

	t.Run("replaying a consumed token fails", func(t *testing.T) {
		store := newDeletionStore()
		p := store.addProperty(soldProperty())
		req := store.addRequest(pendingRequest(p.Id))
		svc, _ := newTestDeletionService(store)

		_, err := svc.ApproveDeletion(context.Background(), req.Token)
		require.NoError(t, err)

		_, err = svc.ApproveDeletion(context.Background(), req.Token)
		assert.True(t, apperror.IsInvalidState(err))
		assert.EqualError(t, err, "deletion request already approved")
	})

	t.Run("concurrent clicks resolve to exactly one winner", func(t *testing.T) {
		store := newDeletionStore()
		p := store.addProperty(soldProperty())
		req := store.addRequest(pendingRequest(p.Id))
		svc, _ := newTestDeletionService(store)

		const callers = 16
		var wg sync.WaitGroup
		errs := make([]error, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = svc.ApproveDeletion(context.Background(), req.Token)
			}(i)
		}
		wg.Wait()

		wins := 0
		for _, err := range errs {
			if err == nil {
				wins++
			} else {
				assert.True(t, apperror.IsInvalidState(err))
			}
		}
		assert.Equal(t, 1, wins)
		assert.False(t, store.hasProperty(p.Id))
	})

	t.Run("batch approval resolves pending siblings", func(t *testing.T) {
		store := newDeletionStore()
		p1 := store.addProperty(soldProperty())
		p2 := store.addProperty(soldProperty())
		batchId := uuid.New()

		r1 := pendingRequest(p1.Id)
		r1.BatchId = &batchId
		store.addRequest(r1)
		r2 := pendingRequest(p2.Id)
		r2.BatchId = &batchId
		store.addRequest(r2)

		svc, _ := newTestDeletionService(store)
		_, err := svc.ApproveDeletion(context.Background(), r1.Token)
		require.NoError(t, err)

		assert.False(t, store.hasProperty(p1.Id))
		assert.False(t, store.hasProperty(p2.Id))
		sibling := store.requestByToken(r2.Token)
		require.NotNil(t, sibling)
		assert.Equal(t, entity.DeletionStatusApproved, sibling.Status)
	})
}

func TestRejectDeletion(t *testing.T) {
	t.Run("rejection leaves the property intact", func(t *testing.T) {
		store := newDeletionStore()
		p := store.addProperty(soldProperty())
		req := store.addRequest(pendingRequest(p.Id))
		svc, _ := newTestDeletionService(store)

		res, err := svc.RejectDeletion(context.Background(), req.Token)
		require.NoError(t, err)
		assert.Equal(t, string(entity.DeletionStatusRejected), res.Status)

		assert.True(t, store.hasProperty(p.Id))
		stored := store.requestByToken(req.Token)
		require.NotNil(t, stored)
		assert.Equal(t, entity.DeletionStatusRejected, stored.Status)
	})

	t.Run("approve after reject fails", func(t *testing.T) {
		store := newDeletionStore()
		p := store.addProperty(soldProperty())
		req := store.addRequest(pendingRequest(p.Id))
		svc, _ := newTestDeletionService(store)

		_, err := svc.RejectDeletion(context.Background(), req.Token)
		require.NoError(t, err)

		_, err = svc.ApproveDeletion(context.Background(), req.Token)
		assert.True(t, apperror.IsInvalidState(err))
		assert.True(t, store.hasProperty(p.Id))
	})
}

func TestRequestBulkDeletion(t *testing.T) {
	requester := Requester{Email: "agent@landivo.local", Identity: "u-1", Name: "Agent"}

	t.Run("skips ineligible properties and groups the rest", func(t *testing.T) {
		store := newDeletionStore()
		sold := store.addProperty(soldProperty())

		live := soldProperty()
		live.Status = entity.PropertyStatusAvailable
		store.addProperty(live)

		alreadyPending := store.addProperty(soldProperty())
		store.addRequest(pendingRequest(alreadyPending.Id))

		svc, _ := newTestDeletionService(store)
		res, err := svc.RequestBulkDeletion(context.Background(), requester, &dto.BulkDeletionRequest{
			PropertyIds: []uuid.UUID{sold.Id, live.Id, alreadyPending.Id},
		})
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{sold.Id}, res.Requested)
		assert.ElementsMatch(t, []uuid.UUID{live.Id, alreadyPending.Id}, res.Skipped)

		created, err := (&memDeletionRepo{store: store}).FindAll(context.Background(),
			specification.ByBatchID{BatchID: res.BatchId})
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, sold.Id, created[0].PropertyId)
	})

	t.Run("fails when nothing in the batch is eligible", func(t *testing.T) {
		store := newDeletionStore()
		live := soldProperty()
		live.Status = entity.PropertyStatusPending
		store.addProperty(live)

		svc, _ := newTestDeletionService(store)
		_, err := svc.RequestBulkDeletion(context.Background(), requester, &dto.BulkDeletionRequest{
			PropertyIds: []uuid.UUID{live.Id},
		})
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestDeleteDirect(t *testing.T) {
	t.Run("unknown property", func(t *testing.T) {
		store := newDeletionStore()
		svc, _ := newTestDeletionService(store)
		err := svc.DeleteDirect(context.Background(), uuid.New())
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("removes the property and purges pending requests", func(t *testing.T) {
		store := newDeletionStore()
		p := store.addProperty(soldProperty())
		req := store.addRequest(pendingRequest(p.Id))
		svc, _ := newTestDeletionService(store)

		require.NoError(t, svc.DeleteDirect(context.Background(), p.Id))

		assert.False(t, store.hasProperty(p.Id))
		assert.Nil(t, store.requestByToken(req.Token))
	})
}

func TestResendApproval(t *testing.T) {
	t.Run("resends the approval email for a live request", func(t *testing.T) {
		store := newDeletionStore()
		p := store.addProperty(soldProperty())
		req := store.addRequest(pendingRequest(p.Id))
		svc, m := newTestDeletionService(store)

		require.NoError(t, svc.ResendApproval(context.Background(), req.Id))

		m.mu.Lock()
		defer m.mu.Unlock()
		require.Len(t, m.approvals, 1)
		assert.Contains(t, m.approvals[0].ApprovalURL, req.Token)
		assert.Equal(t, p.FullAddress(), m.approvals[0].PropertyAddress)
	})

	t.Run("refuses resolved and expired requests", func(t *testing.T) {
		store := newDeletionStore()
		p := store.addProperty(soldProperty())

		resolved := pendingRequest(p.Id)
		resolved.Status = entity.DeletionStatusApproved
		store.addRequest(resolved)

		expired := pendingRequest(p.Id)
		expired.ExpiresAt = time.Now().Add(-time.Minute)
		store.addRequest(expired)

		svc, _ := newTestDeletionService(store)
		assert.True(t, apperror.IsInvalidState(svc.ResendApproval(context.Background(), resolved.Id)))
		assert.True(t, apperror.IsExpiredToken(svc.ResendApproval(context.Background(), expired.Id)))
	})
}

func TestListPending(t *testing.T) {
	store := newDeletionStore()
	p := store.addProperty(soldProperty())
	req := store.addRequest(pendingRequest(p.Id))

	resolved := pendingRequest(p.Id)
	resolved.Status = entity.DeletionStatusRejected
	store.addRequest(resolved)

	svc, _ := newTestDeletionService(store)
	res, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, req.Id, res[0].Id)
	assert.Equal(t, p.FullAddress(), res[0].PropertyAddress)
	assert.Equal(t, string(entity.DeletionStatusPending), res[0].Status)
}
