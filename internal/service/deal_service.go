package service

import (
	"context"
	"fmt"
	"time"

	"landivo-be/internal/dto"
	"landivo-be/internal/entity"
	"landivo-be/internal/pkg/apperror"
	"landivo-be/internal/pkg/logger"
	"landivo-be/internal/repository/specification"
	"landivo-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IDealService interface {
	Create(ctx context.Context, req *dto.CreateDealRequest) (*dto.CreateDealResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.DealResponse, error)
	List(ctx context.Context) ([]*dto.DealResponse, error)
	CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.CreatePaymentResponse, error)
	HandlePaymentNotification(ctx context.Context, req *dto.PaymentNotificationRequest) error
	Payments(ctx context.Context, dealId uuid.UUID) ([]*dto.PaymentResponse, error)
}

type dealService struct {
	uowFactory        unitofwork.RepositoryFactory
	logger            logger.ILogger
	midtransServerKey string
	midtransEnv       midtrans.EnvironmentType
	clientURL         string
}

func NewDealService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger, serverKey, environment, clientURL string) IDealService {
	env := midtrans.Sandbox
	if environment == "production" {
		env = midtrans.Production
	}
	return &dealService{
		uowFactory:        uowFactory,
		logger:            log,
		midtransServerKey: serverKey,
		midtransEnv:       env,
		clientURL:         clientURL,
	}
}

func (s *dealService) Create(ctx context.Context, req *dto.CreateDealRequest) (*dto.CreateDealResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: req.PropertyId})
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperror.NewValidation("property not found")
	}

	buyer, err := uow.BuyerRepository().FindOne(ctx, specification.ByID{ID: req.BuyerId})
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, apperror.NewValidation("buyer not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	deal := entity.Deal{
		Id:             uuid.New(),
		PropertyId:     req.PropertyId,
		BuyerId:        req.BuyerId,
		SalePrice:      req.SalePrice,
		DownPayment:    req.DownPayment,
		MonthlyPayment: req.MonthlyPayment,
		TermMonths:     req.TermMonths,
		InterestRate:   req.InterestRate,
		Status:         entity.DealStatusActive,
		StartDate:      req.StartDate,
		CreatedAt:      time.Now(),
	}
	if err := uow.DealRepository().Create(ctx, &deal); err != nil {
		return nil, err
	}

	// A property under a seller-financed deal is off the market.
	if err := uow.PropertyRepository().UpdateStatus(ctx, property.Id, entity.PropertyStatusSold); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &dto.CreateDealResponse{Id: deal.Id}, nil
}

func (s *dealService) Show(ctx context.Context, id uuid.UUID) (*dto.DealResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deal, err := uow.DealRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, apperror.NewNotFound("deal not found")
	}
	return s.toResponse(deal), nil
}

func (s *dealService) List(ctx context.Context) ([]*dto.DealResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deals, err := uow.DealRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.DealResponse, len(deals))
	for i, d := range deals {
		res[i] = s.toResponse(d)
	}
	return res, nil
}

func (s *dealService) CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.CreatePaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deal, err := uow.DealRepository().FindOne(ctx, specification.ByID{ID: req.DealId})
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, apperror.NewNotFound("deal not found")
	}
	if deal.Status != entity.DealStatusActive {
		return nil, apperror.NewInvalidState("deal is not active")
	}

	buyer, err := uow.BuyerRepository().FindOne(ctx, specification.ByID{ID: deal.BuyerId})
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, apperror.NewValidation("buyer not found")
	}

	orderId := fmt.Sprintf("deal-%s-%d", deal.Id.String()[:8], time.Now().Unix())

	var sClient snap.Client
	sClient.New(s.midtransServerKey, s.midtransEnv)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: int64(req.Amount),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: s.clientURL + "/payments/finish",
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: buyer.FirstName,
			LName: buyer.LastName,
			Email: buyer.Email,
			Phone: buyer.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    deal.Id.String(),
				Price: int64(req.Amount),
				Qty:   1,
				Name:  "Monthly installment",
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	payment := entity.Payment{
		Id:        uuid.New(),
		DealId:    deal.Id,
		OrderId:   orderId,
		Amount:    req.Amount,
		Status:    entity.PaymentStatusPending,
		CreatedAt: time.Now(),
	}
	if err := uow.DealRepository().CreatePayment(ctx, &payment); err != nil {
		return nil, err
	}

	return &dto.CreatePaymentResponse{
		OrderId:     orderId,
		RedirectURL: snapResp.RedirectURL,
		Token:       snapResp.Token,
	}, nil
}

// HandlePaymentNotification processes the midtrans webhook. Unknown order
// ids are acknowledged silently; midtrans retries on non-2xx and the
// order will never appear.
func (s *dealService) HandlePaymentNotification(ctx context.Context, req *dto.PaymentNotificationRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	payment, err := uow.DealRepository().FindPaymentByOrderId(ctx, req.OrderId)
	if err != nil {
		return err
	}
	if payment == nil {
		s.logger.Warn("deal", "webhook for unknown order", map[string]interface{}{
			"order_id": req.OrderId,
		})
		return nil
	}

	var status entity.PaymentStatus
	switch req.TransactionStatus {
	case "capture":
		if req.FraudStatus == "accept" {
			status = entity.PaymentStatusSuccess
		} else {
			status = entity.PaymentStatusPending
		}
	case "settlement":
		status = entity.PaymentStatusSuccess
	case "deny", "cancel", "expire":
		status = entity.PaymentStatusFailed
	case "refund", "partial_refund":
		status = entity.PaymentStatusRefunded
	default:
		return nil
	}

	if err := uow.DealRepository().UpdatePaymentStatus(ctx, req.OrderId, status, req.PaymentType); err != nil {
		return err
	}

	s.logger.Info("deal", "payment status updated", map[string]interface{}{
		"order_id": req.OrderId,
		"status":   string(status),
	})
	return nil
}

func (s *dealService) Payments(ctx context.Context, dealId uuid.UUID) ([]*dto.PaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	payments, err := uow.DealRepository().FindPaymentsByDealId(ctx, dealId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = &dto.PaymentResponse{
			Id:            p.Id,
			DealId:        p.DealId,
			OrderId:       p.OrderId,
			Amount:        p.Amount,
			Status:        string(p.Status),
			PaymentMethod: p.PaymentMethod,
			PaidAt:        p.PaidAt,
			CreatedAt:     p.CreatedAt,
		}
	}
	return res, nil
}

func (s *dealService) toResponse(d *entity.Deal) *dto.DealResponse {
	return &dto.DealResponse{
		Id:             d.Id,
		PropertyId:     d.PropertyId,
		BuyerId:        d.BuyerId,
		SalePrice:      d.SalePrice,
		DownPayment:    d.DownPayment,
		MonthlyPayment: d.MonthlyPayment,
		TermMonths:     d.TermMonths,
		InterestRate:   d.InterestRate,
		Status:         string(d.Status),
		StartDate:      d.StartDate,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
