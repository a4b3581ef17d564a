package service

import (
	"context"
	"time"

	"landivo-be/internal/dto"
	"landivo-be/internal/entity"
	"landivo-be/internal/pkg/apperror"
	"landivo-be/internal/pkg/cache"
	"landivo-be/internal/pkg/logger"
	"landivo-be/internal/repository/specification"
	"landivo-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPropertyService interface {
	Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreatePropertyRequest) (*dto.CreatePropertyResponse, error)
	Update(ctx context.Context, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.PropertyResponse, error)
	List(ctx context.Context, req *dto.ListPropertiesRequest) (*dto.ListPropertiesResponse, error)
}

type propertyService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.PropertyCache
	logger     logger.ILogger
}

func NewPropertyService(uowFactory unitofwork.RepositoryFactory, propertyCache *cache.PropertyCache, log logger.ILogger) IPropertyService {
	return &propertyService{
		uowFactory: uowFactory,
		cache:      propertyCache,
		logger:     log,
	}
}

func (s *propertyService) Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreatePropertyRequest) (*dto.CreatePropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property := entity.Property{
		Id:            uuid.New(),
		OwnerId:       &ownerId,
		Title:         req.Title,
		Description:   req.Description,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		County:        req.County,
		State:         req.State,
		Zip:           req.Zip,
		Area:          req.Area,
		Apn:           req.Apn,
		AcreageSqft:   req.AcreageSqft,
		AskingPrice:   req.AskingPrice,
		MinPrice:      req.MinPrice,
		Financing:     req.Financing,
		Status:        entity.PropertyStatusAvailable,
		Featured:      req.Featured,
		CreatedAt:     time.Now(),
	}

	if err := uow.PropertyRepository().Create(ctx, &property); err != nil {
		return nil, err
	}

	s.cache.InvalidateLists(ctx)
	return &dto.CreatePropertyResponse{Id: property.Id}, nil
}

func (s *propertyService) Update(ctx context.Context, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperror.NewNotFound("property not found")
	}

	property.Title = req.Title
	property.Description = req.Description
	property.StreetAddress = req.StreetAddress
	property.City = req.City
	property.County = req.County
	property.State = req.State
	property.Zip = req.Zip
	property.Area = req.Area
	property.Apn = req.Apn
	property.AcreageSqft = req.AcreageSqft
	property.AskingPrice = req.AskingPrice
	property.MinPrice = req.MinPrice
	property.Financing = req.Financing
	property.Featured = req.Featured
	property.Status = entity.PropertyStatus(req.Status)

	if err := uow.PropertyRepository().Update(ctx, property); err != nil {
		return nil, err
	}

	s.cache.InvalidateLists(ctx)
	return s.toResponse(property), nil
}

func (s *propertyService) Show(ctx context.Context, id uuid.UUID) (*dto.PropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperror.NewNotFound("property not found")
	}

	// Best-effort; a failed counter bump never blocks the read.
	if err := uow.PropertyRepository().IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("property", "failed to increment view count", map[string]interface{}{
			"property_id": id,
			"error":       err.Error(),
		})
	}

	return s.toResponse(property), nil
}

func (s *propertyService) List(ctx context.Context, req *dto.ListPropertiesRequest) (*dto.ListPropertiesResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	if cached, ok := s.cache.GetList(ctx, req); ok {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var filters []specification.Specification
	if req.Status != "" {
		filters = append(filters, specification.ByStatus{Status: req.Status})
	}
	if req.City != "" {
		filters = append(filters, specification.ByCity{City: req.City})
	}
	if req.Area != "" {
		filters = append(filters, specification.ByArea{Area: req.Area})
	}
	if req.Featured {
		filters = append(filters, specification.FeaturedOnly{})
	}

	total, err := uow.PropertyRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	page := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: req.PerPage, Offset: (req.Page - 1) * req.PerPage},
	)
	properties, err := uow.PropertyRepository().FindAll(ctx, page...)
	if err != nil {
		return nil, err
	}

	res := &dto.ListPropertiesResponse{
		Properties: make([]dto.PropertyResponse, len(properties)),
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
	}
	for i, p := range properties {
		res.Properties[i] = *s.toResponse(p)
	}

	s.cache.SetList(ctx, req, res)
	return res, nil
}

func (s *propertyService) toResponse(p *entity.Property) *dto.PropertyResponse {
	return &dto.PropertyResponse{
		Id:            p.Id,
		Title:         p.Title,
		Description:   p.Description,
		StreetAddress: p.StreetAddress,
		City:          p.City,
		County:        p.County,
		State:         p.State,
		Zip:           p.Zip,
		Area:          p.Area,
		Apn:           p.Apn,
		AcreageSqft:   p.AcreageSqft,
		AskingPrice:   p.AskingPrice,
		MinPrice:      p.MinPrice,
		Financing:     p.Financing,
		Status:        string(p.Status),
		Featured:      p.Featured,
		ViewCount:     p.ViewCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
