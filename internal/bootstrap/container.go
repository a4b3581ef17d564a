package bootstrap

import (
	"context"
	"log"

	"landivo-be/internal/config"
	"landivo-be/internal/controller"
	"landivo-be/internal/handler"
	"landivo-be/internal/pkg/cache"
	"landivo-be/internal/pkg/logger"
	"landivo-be/internal/pkg/mailer"
	"landivo-be/internal/repository/implementation"
	"landivo-be/internal/repository/memory"
	"landivo-be/internal/repository/unitofwork"
	"landivo-be/internal/service"
	"landivo-be/internal/websocket"

	pktNats "landivo-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// campaignTopic is the in-process queue carrying per-recipient send jobs.
const campaignTopic = "campaign_jobs"

type Container struct {
	// Controllers
	PropertyController      controller.IPropertyController
	DeletionController      controller.IDeletionController
	BuyerController         controller.IBuyerController
	OfferController         controller.IOfferController
	QualificationController controller.IQualificationController
	EmailListController     controller.IEmailListController
	CampaignController      controller.ICampaignController
	DealController          controller.IDealController
	SettingsController      controller.ISettingsController
	AuthController          controller.IAuthController
	OAuthController         controller.IOAuthController
	UserController          controller.IUserController

	// Background services (run by main.go)
	ConsumerService service.IConsumerService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Campaign queue
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	propertyCache := cache.NewPropertyCache(rdb)
	settingsCache := memory.NewSettingsCache()

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(campaignTopic, pubSub)

	settingsService := service.NewSettingsService(uowFactory, settingsCache)
	propertyService := service.NewPropertyService(uowFactory, propertyCache, sysLogger)
	buyerService := service.NewBuyerService(uowFactory, natsPub, sysLogger)
	offerService := service.NewOfferService(uowFactory, emailService, settingsService, natsPub, sysLogger)
	qualificationService := service.NewQualificationService(uowFactory)
	emailListService := service.NewEmailListService(uowFactory)
	campaignService := service.NewCampaignService(uowFactory, emailListService, publisherService, sysLogger)
	dealService := service.NewDealService(uowFactory, sysLogger, cfg.Payment.MidtransServerKey, cfg.Payment.MidtransEnv, cfg.App.ClientURL)

	deletionService := service.NewDeletionService(
		uowFactory,
		emailService,
		natsPub,
		sysLogger,
		cfg.App.BaseURL,
		cfg.App.AdminEmail,
		cfg.Deletion.TokenTTLHours,
	)

	authService := service.NewAuthService(uowFactory, emailService, sysLogger, cfg.App.ClientURL)
	oauthService := service.NewOAuthService(uowFactory)
	userService := service.NewUserService(uowFactory)

	campaignWorker := service.NewCampaignWorker(pubSub, campaignTopic, uowFactory, emailService, sysLogger)

	// 3.5 Notification domain
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)

	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		PropertyController:      controller.NewPropertyController(propertyService),
		DeletionController:      controller.NewDeletionController(deletionService),
		BuyerController:         controller.NewBuyerController(buyerService),
		OfferController:         controller.NewOfferController(offerService),
		QualificationController: controller.NewQualificationController(qualificationService),
		EmailListController:     controller.NewEmailListController(emailListService),
		CampaignController:      controller.NewCampaignController(campaignService),
		DealController:          controller.NewDealController(dealService),
		SettingsController:      controller.NewSettingsController(settingsService),
		AuthController:          controller.NewAuthController(authService),
		OAuthController:         controller.NewOAuthController(oauthService),
		UserController:          controller.NewUserController(userService),

		ConsumerService: campaignWorker,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
