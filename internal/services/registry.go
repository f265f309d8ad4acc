package services

import (
	"time"

	"alertnet_backend/internal/cache"
	"alertnet_backend/internal/channels"
	"alertnet_backend/internal/config"
	"alertnet_backend/internal/push"
	"alertnet_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires repositories, channel senders and services
// together. Built once at startup; everything downstream receives its
// dependencies from here.
type ServiceContainer struct {
	Auth          AuthService
	Users         UserService
	Alerts        AlertService
	Communities   CommunityService
	Categories    CategoryService
	Comments      CommentService
	Devices       DeviceService
	Notifications NotificationService
	Dispatch      DispatchService

	UserRepo repositories.UserRepository
}

func NewServiceContainer(db *gorm.DB, cfg *config.Config, views cache.ViewTracker) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	communityRepo := repositories.NewCommunityRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	alertRepo := repositories.NewAlertRepository(db)
	voteRepo := repositories.NewVoteRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	deviceRepo := repositories.NewDeviceRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	provider := push.NewFCMProvider(
		cfg.Push.FCMServerKey,
		cfg.Push.Endpoint,
		time.Duration(cfg.Push.TimeoutSeconds)*time.Second,
	)

	senders := []channels.Sender{
		channels.NewEmailSender(cfg),
		channels.NewPushSender(
			deviceRepo,
			provider,
			time.Duration(cfg.Push.TimeoutSeconds)*time.Second,
			time.Duration(cfg.Push.TTLHours)*time.Hour,
		),
	}

	resolver := NewRecipientResolver(cfg.Notify.Resolver, userRepo, cfg.Notify.MaxRadiusKm)
	dispatch := NewDispatchService(
		resolver,
		senders,
		userRepo,
		deviceRepo,
		notificationRepo,
		cfg.Notify.Trigger,
		cfg.Notify.BaseURL,
	)

	return &ServiceContainer{
		Auth:          NewAuthService(userRepo),
		Users:         NewUserService(userRepo),
		Alerts:        NewAlertService(alertRepo, voteRepo, userRepo, communityRepo, categoryRepo, dispatch, views),
		Communities:   NewCommunityService(communityRepo, userRepo),
		Categories:    NewCategoryService(categoryRepo),
		Comments:      NewCommentService(commentRepo, alertRepo, userRepo),
		Devices:       NewDeviceService(deviceRepo),
		Notifications: NewNotificationService(notificationRepo),
		Dispatch:      dispatch,

		UserRepo: userRepo,
	}
}
