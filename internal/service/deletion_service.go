package service

import (
	"context"
	"fmt"
	"time"

	"landivo-be/internal/dto"
	"landivo-be/internal/entity"
	"landivo-be/internal/pkg/apperror"
	"landivo-be/internal/pkg/logger"
	"landivo-be/internal/pkg/mailer"
	"landivo-be/internal/repository/specification"
	"landivo-be/internal/repository/unitofwork"
	"landivo-be/pkg/events"
	pktNats "landivo-be/pkg/nats"

	"github.com/google/uuid"
)

// Requester identifies who filed a deletion request, taken from the JWT.
type Requester struct {
	Email    string
	Identity string
	Name     string
}

type IDeletionService interface {
	RequestDeletion(ctx context.Context, requester Requester, req *dto.CreateDeletionRequest) (*dto.CreateDeletionResponse, error)
	RequestBulkDeletion(ctx context.Context, requester Requester, req *dto.BulkDeletionRequest) (*dto.BulkDeletionResponse, error)
	ApproveDeletion(ctx context.Context, token string) (*dto.ResolveDeletionResponse, error)
	RejectDeletion(ctx context.Context, token string) (*dto.ResolveDeletionResponse, error)
	DeleteDirect(ctx context.Context, propertyId uuid.UUID) error
	ListPending(ctx context.Context) ([]*dto.DeletionRequestResponse, error)
	ResendApproval(ctx context.Context, id uuid.UUID) error
}

type deletionService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
	baseURL        string
	adminEmail     string
	tokenTTL       time.Duration
}

func NewDeletionService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	baseURL string,
	adminEmail string,
	tokenTTLHours int,
) IDeletionService {
	return &deletionService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
		baseURL:        baseURL,
		adminEmail:     adminEmail,
		tokenTTL:       time.Duration(tokenTTLHours) * time.Hour,
	}
}

func (s *deletionService) approvalURL(token string) string {
	return fmt.Sprintf("%s/api/residency/approve-deletion/%s", s.baseURL, token)
}

// terminalStateMessage names the sink state a request is already in, so the
// UI can tell a consumed link from a lapsed one.
func terminalStateMessage(status entity.DeletionStatus) string {
	switch status {
	case entity.DeletionStatusApproved:
		return "deletion request already approved"
	case entity.DeletionStatusRejected:
		return "deletion request already rejected"
	case entity.DeletionStatusExpired:
		return "deletion request link has expired"
	default:
		return "deletion request already processed"
	}
}

func (s *deletionService) RequestDeletion(ctx context.Context, requester Requester, req *dto.CreateDeletionRequest) (*dto.CreateDeletionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: req.PropertyId})
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperror.NewValidation("property not found")
	}
	if !property.Status.DeletionAllowed() {
		return nil, apperror.NewValidation(
			fmt.Sprintf("property status %q does not allow deletion; mark it Sold or Not Available first", property.Status))
	}

	// The pending check and the insert share one transaction; the partial
	// unique index on (property_id) WHERE status = 'PENDING' backstops the
	// race between two concurrent requesters.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	pending, err := uow.DeletionRequestRepository().Count(ctx,
		specification.ByPropertyID{PropertyID: property.Id},
		specification.ByDeletionStatus{Status: string(entity.DeletionStatusPending)},
	)
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, apperror.NewInvalidState("a deletion request is already pending for this property")
	}

	request := entity.DeletionRequest{
		Id:                  uuid.New(),
		PropertyId:          property.Id,
		Token:               uuid.NewString(),
		RequestedBy:         requester.Email,
		RequestedByIdentity: requester.Identity,
		RequestedByName:     requester.Name,
		Status:              entity.DeletionStatusPending,
		ExpiresAt:           time.Now().Add(s.tokenTTL),
		CreatedAt:           time.Now(),
	}
	if req.Reason != "" {
		reason := req.Reason
		request.Reason = &reason
	}

	if err := uow.DeletionRequestRepository().Create(ctx, &request); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.dispatchApprovalEmail(property, &request)
	s.publishEvent(ctx, events.TypeDeletionRequested, map[string]interface{}{
		"property_id":      property.Id,
		"property_address": property.FullAddress(),
		"request_id":       request.Id,
		"requested_by":     requester.Name,
	})

	return &dto.CreateDeletionResponse{
		Id:        request.Id,
		ExpiresAt: request.ExpiresAt,
	}, nil
}

func (s *deletionService) RequestBulkDeletion(ctx context.Context, requester Requester, req *dto.BulkDeletionRequest) (*dto.BulkDeletionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	properties, err := uow.PropertyRepository().FindAll(ctx, specification.ByIDs{IDs: req.PropertyIds})
	if err != nil {
		return nil, err
	}

	byId := make(map[uuid.UUID]*entity.Property, len(properties))
	for _, p := range properties {
		byId[p.Id] = p
	}

	batchId := uuid.New()
	resp := &dto.BulkDeletionResponse{BatchId: batchId}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	var created []*entity.DeletionRequest
	var addresses []string

	for _, propertyId := range req.PropertyIds {
		property, ok := byId[propertyId]
		if !ok || !property.Status.DeletionAllowed() {
			resp.Skipped = append(resp.Skipped, propertyId)
			continue
		}

		pending, err := uow.DeletionRequestRepository().Count(ctx,
			specification.ByPropertyID{PropertyID: propertyId},
			specification.ByDeletionStatus{Status: string(entity.DeletionStatusPending)},
		)
		if err != nil {
			return nil, err
		}
		if pending > 0 {
			resp.Skipped = append(resp.Skipped, propertyId)
			continue
		}

		bid := batchId
		request := entity.DeletionRequest{
			Id:                  uuid.New(),
			PropertyId:          propertyId,
			BatchId:             &bid,
			Token:               uuid.NewString(),
			RequestedBy:         requester.Email,
			RequestedByIdentity: requester.Identity,
			RequestedByName:     requester.Name,
			Status:              entity.DeletionStatusPending,
			ExpiresAt:           time.Now().Add(s.tokenTTL),
			CreatedAt:           time.Now(),
		}
		if req.Reason != "" {
			reason := req.Reason
			request.Reason = &reason
		}

		if err := uow.DeletionRequestRepository().Create(ctx, &request); err != nil {
			return nil, err
		}
		created = append(created, &request)
		addresses = append(addresses, property.FullAddress())
		resp.Requested = append(resp.Requested, propertyId)
	}

	if len(created) == 0 {
		return nil, apperror.NewValidation("no properties in the batch are eligible for deletion")
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// One email for the batch; its approval link carries the first token
	// and approving it resolves every request sharing the batch id.
	first := created[0]
	go func() {
		payload := mailer.DeletionApprovalEmail{
			Reason:         valueOrEmpty(first.Reason),
			RequestedBy:    requester.Name,
			ApprovalURL:    s.approvalURL(first.Token),
			ExpiresInHours: int(s.tokenTTL.Hours()),
		}
		if err := s.emailService.SendBulkDeletionApprovalRequest(s.adminEmail, addresses, payload); err != nil {
			s.logger.Error("deletion", "failed to send bulk approval email", map[string]interface{}{
				"batch_id": first.BatchId,
				"error":    err.Error(),
			})
		}
	}()

	s.publishEvent(ctx, events.TypeDeletionRequested, map[string]interface{}{
		"batch_id":     batchId,
		"count":        len(created),
		"requested_by": requester.Name,
	})

	return resp, nil
}

// ApproveDeletion resolves a token. The status change is a conditional
// UPDATE, so replays and concurrent clicks collapse to exactly one winner.
func (s *deletionService) ApproveDeletion(ctx context.Context, token string) (*dto.ResolveDeletionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.DeletionRequestRepository().FindOne(ctx, specification.ByToken{Token: token})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFound("deletion request not found")
	}
	if request.Status.Terminal() {
		return nil, apperror.NewInvalidState(terminalStateMessage(request.Status))
	}
	if request.ExpiredAt(time.Now()) {
		won, err := uow.DeletionRequestRepository().TransitionStatus(ctx,
			token, entity.DeletionStatusPending, entity.DeletionStatusExpired, nil)
		if err != nil {
			return nil, err
		}
		if !won {
			// A concurrent caller resolved it between our read and the update.
			return nil, apperror.NewInvalidState("deletion request already processed")
		}
		return nil, apperror.NewExpiredToken("deletion request has expired")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	won, err := uow.DeletionRequestRepository().TransitionStatus(ctx,
		token, entity.DeletionStatusPending, entity.DeletionStatusApproved, &now)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, apperror.NewInvalidState("deletion request already processed")
	}

	approved := []*entity.DeletionRequest{request}

	// A batch approval link resolves every sibling still pending.
	if request.BatchId != nil {
		siblings, err := uow.DeletionRequestRepository().FindAll(ctx,
			specification.ByBatchID{BatchID: *request.BatchId},
			specification.ByDeletionStatus{Status: string(entity.DeletionStatusPending)},
		)
		if err != nil {
			return nil, err
		}
		for _, sibling := range siblings {
			won, err := uow.DeletionRequestRepository().TransitionStatus(ctx,
				sibling.Token, entity.DeletionStatusPending, entity.DeletionStatusApproved, &now)
			if err != nil {
				return nil, err
			}
			if won {
				approved = append(approved, sibling)
			}
		}
	}

	for _, r := range approved {
		// Other pending requests for the same property are moot once it
		// is gone; purge them so the partial index slot frees up cleanly.
		if _, err := uow.DeletionRequestRepository().DeletePendingByPropertyId(ctx, r.PropertyId, r.Id); err != nil {
			return nil, err
		}
		if err := uow.PropertyRepository().Delete(ctx, r.PropertyId); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypeDeletionApproved, map[string]interface{}{
		"property_id": request.PropertyId,
		"request_id":  request.Id,
		"count":       len(approved),
	})

	return &dto.ResolveDeletionResponse{
		PropertyId: request.PropertyId,
		Status:     string(entity.DeletionStatusApproved),
	}, nil
}

func (s *deletionService) RejectDeletion(ctx context.Context, token string) (*dto.ResolveDeletionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.DeletionRequestRepository().FindOne(ctx, specification.ByToken{Token: token})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFound("deletion request not found")
	}
	if request.Status.Terminal() {
		return nil, apperror.NewInvalidState(terminalStateMessage(request.Status))
	}
	if request.ExpiredAt(time.Now()) {
		won, err := uow.DeletionRequestRepository().TransitionStatus(ctx,
			token, entity.DeletionStatusPending, entity.DeletionStatusExpired, nil)
		if err != nil {
			return nil, err
		}
		if !won {
			return nil, apperror.NewInvalidState("deletion request already processed")
		}
		return nil, apperror.NewExpiredToken("deletion request has expired")
	}

	won, err := uow.DeletionRequestRepository().TransitionStatus(ctx,
		token, entity.DeletionStatusPending, entity.DeletionStatusRejected, nil)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, apperror.NewInvalidState("deletion request already processed")
	}

	s.publishEvent(ctx, events.TypeDeletionRejected, map[string]interface{}{
		"property_id": request.PropertyId,
		"request_id":  request.Id,
	})

	return &dto.ResolveDeletionResponse{
		PropertyId: request.PropertyId,
		Status:     string(entity.DeletionStatusRejected),
	}, nil
}

// DeleteDirect removes a property without the approval round-trip. Callers
// are gated by the admin role middleware.
func (s *deletionService) DeleteDirect(ctx context.Context, propertyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: propertyId})
	if err != nil {
		return err
	}
	if property == nil {
		return apperror.NewNotFound("property not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if _, err := uow.DeletionRequestRepository().DeletePendingByPropertyId(ctx, propertyId, uuid.Nil); err != nil {
		return err
	}
	if err := uow.PropertyRepository().Delete(ctx, propertyId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *deletionService) ListPending(ctx context.Context) ([]*dto.DeletionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.DeletionRequestRepository().FindAll(ctx,
		specification.ByDeletionStatus{Status: string(entity.DeletionStatusPending)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	propertyIds := make([]uuid.UUID, 0, len(requests))
	for _, r := range requests {
		propertyIds = append(propertyIds, r.PropertyId)
	}

	addresses := make(map[uuid.UUID]string, len(propertyIds))
	if len(propertyIds) > 0 {
		properties, err := uow.PropertyRepository().FindAll(ctx, specification.ByIDs{IDs: propertyIds})
		if err != nil {
			return nil, err
		}
		for _, p := range properties {
			addresses[p.Id] = p.FullAddress()
		}
	}

	res := make([]*dto.DeletionRequestResponse, len(requests))
	for i, r := range requests {
		res[i] = &dto.DeletionRequestResponse{
			Id:              r.Id,
			PropertyId:      r.PropertyId,
			BatchId:         r.BatchId,
			PropertyAddress: addresses[r.PropertyId],
			Reason:          r.Reason,
			RequestedByName: r.RequestedByName,
			Status:          string(r.Status),
			ExpiresAt:       r.ExpiresAt,
			ApprovedAt:      r.ApprovedAt,
			CreatedAt:       r.CreatedAt,
		}
	}
	return res, nil
}

func (s *deletionService) ResendApproval(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.DeletionRequestRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if request == nil {
		return apperror.NewNotFound("deletion request not found")
	}
	if request.Status.Terminal() {
		return apperror.NewInvalidState(terminalStateMessage(request.Status))
	}
	if request.ExpiredAt(time.Now()) {
		return apperror.NewExpiredToken("deletion request has expired")
	}

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: request.PropertyId})
	if err != nil {
		return err
	}
	if property == nil {
		return apperror.NewNotFound("property not found")
	}

	payload := mailer.DeletionApprovalEmail{
		PropertyAddress: property.FullAddress(),
		PropertyID:      property.Id.String(),
		PropertyStatus:  string(property.Status),
		AskingPrice:     property.AskingPrice,
		Reason:          valueOrEmpty(request.Reason),
		RequestedBy:     request.RequestedByName,
		ApprovalURL:     s.approvalURL(request.Token),
		ExpiresInHours:  int(time.Until(request.ExpiresAt).Hours()),
	}
	// Resend is an explicit admin action, so a delivery failure surfaces.
	return s.emailService.SendDeletionApprovalRequest(s.adminEmail, payload)
}

// dispatchApprovalEmail sends asynchronously; a DeliveryError never rolls
// back the committed request.
func (s *deletionService) dispatchApprovalEmail(property *entity.Property, request *entity.DeletionRequest) {
	payload := mailer.DeletionApprovalEmail{
		PropertyAddress: property.FullAddress(),
		PropertyID:      property.Id.String(),
		PropertyStatus:  string(property.Status),
		AskingPrice:     property.AskingPrice,
		Reason:          valueOrEmpty(request.Reason),
		RequestedBy:     request.RequestedByName,
		ApprovalURL:     s.approvalURL(request.Token),
		ExpiresInHours:  int(s.tokenTTL.Hours()),
	}
	go func() {
		if err := s.emailService.SendDeletionApprovalRequest(s.adminEmail, payload); err != nil {
			s.logger.Error("deletion", "failed to send approval email", map[string]interface{}{
				"request_id": request.Id,
				"error":      err.Error(),
			})
		}
	}()
}

func (s *deletionService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("deletion", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
