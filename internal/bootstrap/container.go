package bootstrap

import (
	"log"
	"time"

	"gcn-navigator-be/internal/config"
	"gcn-navigator-be/internal/controller"
	"gcn-navigator-be/internal/pkg/logger"
	"gcn-navigator-be/internal/repository/memory"
	"gcn-navigator-be/internal/repository/unitofwork"
	"gcn-navigator-be/internal/service"
	"gcn-navigator-be/pkg/answer"

	pktNats "gcn-navigator-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController      controller.IChatController
	ReferenceController controller.IReferenceController
	LogController       controller.ILogController

	// Background services (exposed for main.go to run)
	MemoryService service.IMemoryService

	// Shared infrastructure
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	logRing := logger.NewRing(cfg.App.LogRingCapacity)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production", logRing)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(pubSub, cfg.Events.TurnRecordedTopic)

	// NATS is optional; a missing broker only disables external fan-out.
	natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 3. Upstream answering service
	answerClient := answer.NewClient(answer.Config{
		BaseURL:        cfg.Answer.BaseURL,
		RequestTimeout: cfg.Answer.RequestTimeout,
		RetryAttempts:  cfg.Answer.RetryAttempts,
		RetryBaseDelay: cfg.Answer.RetryBaseDelay,
	})

	// 4. Services
	chatService := service.NewChatService(uowFactory, answerClient, publisherService, sysLogger)
	referenceService := service.NewReferenceService(uowFactory, memory.NewReferenceCache(5*time.Minute))
	logService := service.NewLogService(logRing)
	memoryService := service.NewMemoryService(
		pubSub,
		cfg.Events.TurnRecordedTopic,
		uowFactory,
		answerClient,
		natsPub,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		ChatController:      controller.NewChatController(chatService),
		ReferenceController: controller.NewReferenceController(referenceService),
		LogController:       controller.NewLogController(logService),
		MemoryService:       memoryService,
		Logger:              sysLogger,
	}
}
