package service

import (
	"github.com/MKhiriev/go-stay/internal/config"
	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/internal/store"
	"github.com/MKhiriev/go-stay/internal/utils"
)

type Services struct {
	AuthService    AuthService
	PlaceService   PlaceService
	BookingService BookingService
	UploadService  UploadService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	ids := utils.NewUUIDGenerator()
	guard := NewAccessGuard(storages.PlaceRepository, storages.BookingRepository)

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	fetcher := NewRemoteFetcher(utils.NewHTTPClient(cfg.Storage.Files.RemoteFetchTimeout))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, ids, cfg.App, logger),
		PlaceService:   NewPlaceService(storages.PlaceRepository, guard, ids, logger),
		BookingService: NewBookingService(storages.BookingRepository, storages.PlaceRepository, guard, ids, logger),
		UploadService:  NewUploadService(storages.UploadStorage, fetcher, ids, cfg.Storage.Files, logger),
		AppInfoService: appInfoService,
	}, nil
}
