package service

import (
	"context"
	"strings"
	"time"

	"landivo-be/internal/dto"
	"landivo-be/internal/entity"
	"landivo-be/internal/pkg/apperror"
	"landivo-be/internal/repository/specification"
	"landivo-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IEmailListService interface {
	Create(ctx context.Context, req *dto.CreateEmailListRequest) (*dto.CreateEmailListResponse, error)
	Update(ctx context.Context, req *dto.UpdateEmailListRequest) (*dto.EmailListResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.EmailListResponse, error)
	List(ctx context.Context) ([]*dto.EmailListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddMembers(ctx context.Context, req *dto.AddListMembersRequest) (*dto.AddListMembersResponse, error)
	RemoveMember(ctx context.Context, listId, buyerId uuid.UUID) error

	// ResolveRecipients returns the deduplicated buyers a campaign on this
	// list should reach: criteria matches plus manual members, minus
	// anyone unsubscribed.
	ResolveRecipients(ctx context.Context, listId uuid.UUID) ([]*entity.Buyer, error)
}

type emailListService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEmailListService(uowFactory unitofwork.RepositoryFactory) IEmailListService {
	return &emailListService{
		uowFactory: uowFactory,
	}
}

// normalizeValues flattens CSV strings into trimmed, deduplicated entries.
// The legacy admin UI sent `"Austin, Houston"` and `["Austin","Houston"]`
// interchangeably, so both shapes collapse to the same slice.
func normalizeValues(values []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}

func normalizeCriteria(payload *dto.ListCriteriaPayload) *entity.ListCriteria {
	if payload == nil {
		return nil
	}
	criteria := &entity.ListCriteria{
		Areas:      normalizeValues(payload.Areas),
		City:       normalizeValues(payload.City),
		County:     normalizeValues(payload.County),
		BuyerTypes: normalizeValues(payload.BuyerTypes),
		IsVIP:      payload.IsVIP,
	}
	if criteria.Empty() {
		return nil
	}
	return criteria
}

func criteriaToPayload(criteria *entity.ListCriteria) *dto.ListCriteriaPayload {
	if criteria == nil {
		return nil
	}
	return &dto.ListCriteriaPayload{
		Areas:      criteria.Areas,
		City:       criteria.City,
		County:     criteria.County,
		BuyerTypes: criteria.BuyerTypes,
		IsVIP:      criteria.IsVIP,
	}
}

func (s *emailListService) Create(ctx context.Context, req *dto.CreateEmailListRequest) (*dto.CreateEmailListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	list := entity.EmailList{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Criteria:    normalizeCriteria(req.Criteria),
		CreatedAt:   time.Now(),
	}

	if err := uow.EmailListRepository().Create(ctx, &list); err != nil {
		return nil, err
	}

	return &dto.CreateEmailListResponse{Id: list.Id}, nil
}

func (s *emailListService) Update(ctx context.Context, req *dto.UpdateEmailListRequest) (*dto.EmailListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	list, err := uow.EmailListRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, apperror.NewNotFound("email list not found")
	}

	list.Name = req.Name
	list.Description = req.Description
	list.Criteria = normalizeCriteria(req.Criteria)

	if err := uow.EmailListRepository().Update(ctx, list); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, uow, list)
}

func (s *emailListService) Show(ctx context.Context, id uuid.UUID) (*dto.EmailListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	list, err := uow.EmailListRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, apperror.NewNotFound("email list not found")
	}
	return s.toResponse(ctx, uow, list)
}

func (s *emailListService) List(ctx context.Context) ([]*dto.EmailListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	lists, err := uow.EmailListRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.EmailListResponse, len(lists))
	for i, list := range lists {
		r, err := s.toResponse(ctx, uow, list)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

func (s *emailListService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	list, err := uow.EmailListRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if list == nil {
		return apperror.NewNotFound("email list not found")
	}
	return uow.EmailListRepository().Delete(ctx, id)
}

func (s *emailListService) AddMembers(ctx context.Context, req *dto.AddListMembersRequest) (*dto.AddListMembersResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	list, err := uow.EmailListRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, apperror.NewNotFound("email list not found")
	}

	added, err := uow.EmailListRepository().AddMembers(ctx, req.Id, req.BuyerIds)
	if err != nil {
		return nil, err
	}
	return &dto.AddListMembersResponse{Added: int(added)}, nil
}

func (s *emailListService) RemoveMember(ctx context.Context, listId, buyerId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EmailListRepository().RemoveMember(ctx, listId, buyerId)
}

func (s *emailListService) ResolveRecipients(ctx context.Context, listId uuid.UUID) ([]*entity.Buyer, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	list, err := uow.EmailListRepository().FindOne(ctx, specification.ByID{ID: listId})
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, apperror.NewNotFound("email list not found")
	}

	recipients := make(map[uuid.UUID]*entity.Buyer)

	if list.Criteria != nil {
		specs := []specification.Specification{specification.Subscribed{}}
		if len(list.Criteria.BuyerTypes) > 0 {
			specs = append(specs, specification.ByBuyerTypes{BuyerTypes: list.Criteria.BuyerTypes})
		}
		if list.Criteria.IsVIP != nil && *list.Criteria.IsVIP {
			specs = append(specs, specification.VIPOnly{})
		}

		matches, err := uow.BuyerRepository().FindAll(ctx, specs...)
		if err != nil {
			return nil, err
		}
		// Geographic criteria match against the buyer's preferred areas,
		// which live in a JSON column; filter in process.
		for _, buyer := range matches {
			if matchesAreas(list.Criteria, buyer) {
				recipients[buyer.Id] = buyer
			}
		}
	}

	memberIds, err := uow.EmailListRepository().FindMemberBuyerIds(ctx, listId)
	if err != nil {
		return nil, err
	}
	if len(memberIds) > 0 {
		members, err := uow.BuyerRepository().FindAll(ctx,
			specification.ByIDs{IDs: memberIds},
			specification.Subscribed{},
		)
		if err != nil {
			return nil, err
		}
		for _, buyer := range members {
			recipients[buyer.Id] = buyer
		}
	}

	out := make([]*entity.Buyer, 0, len(recipients))
	for _, buyer := range recipients {
		out = append(out, buyer)
	}
	return out, nil
}

func matchesAreas(criteria *entity.ListCriteria, buyer *entity.Buyer) bool {
	if len(criteria.Areas) == 0 {
		return true
	}
	for _, want := range criteria.Areas {
		for _, have := range buyer.PreferredAreas {
			if strings.EqualFold(want, have) {
				return true
			}
		}
	}
	return false
}

func (s *emailListService) toResponse(ctx context.Context, uow unitofwork.UnitOfWork, list *entity.EmailList) (*dto.EmailListResponse, error) {
	memberCount, err := uow.EmailListRepository().CountMembers(ctx, list.Id)
	if err != nil {
		return nil, err
	}
	return &dto.EmailListResponse{
		Id:          list.Id,
		Name:        list.Name,
		Description: list.Description,
		Criteria:    criteriaToPayload(list.Criteria),
		MemberCount: memberCount,
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}, nil
}
