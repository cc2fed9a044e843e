package scan_businesses

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	leadsRepo "github.com/m04kA/SMC-OutreachService/internal/infra/storage/leads"
	directoryClient "github.com/m04kA/SMC-OutreachService/internal/integrations/directory"
)

// UseCase use case сканирования области на бизнесы без настоящего сайта
type UseCase struct {
	directory DirectoryClient
	leadRepo  LeadRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	directory DirectoryClient,
	leadRepo LeadRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		directory: directory,
		leadRepo:  leadRepo,
		logger:    logger,
	}
}

// Execute выполняет use case сканирования области
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScanBusinesses: lat=%.5f, lng=%.5f, radius=%.0fm, category=%q, city=%q",
		req.Latitude, req.Longitude, req.RadiusMeters, req.Category, req.City)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScanBusinesses: validation failed: %v", err)
		return nil, err
	}

	// 2. Опрашиваем справочник бизнесов
	places, err := uc.directory.SearchNearby(ctx, req.Latitude, req.Longitude, req.RadiusMeters, req.Category)
	if err != nil {
		if errors.Is(err, directoryClient.ErrQuotaExceeded) {
			uc.logger.Warn("ScanBusinesses: directory quota exceeded")
			return nil, ErrDirectoryQuota
		}
		uc.logger.Error("ScanBusinesses: directory search failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	// 3. Отбираем бизнесы без настоящего сайта и сохраняем в хранилище
	// Для уже известных PlaceID состояние обзвона сохраняется (Upsert)
	result := &Response{
		Leads:      make([]*domain.Lead, 0, len(places)),
		TotalFound: len(places),
	}

	for i := range places {
		place := &places[i]
		if place.HasWebsite() {
			continue
		}

		_, err := uc.leadRepo.GetByPlaceID(ctx, place.ID)
		isNew := errors.Is(err, leadsRepo.ErrLeadNotFound)
		if err != nil && !isNew {
			uc.logger.Error("ScanBusinesses: failed to look up lead place_id=%s: %v", place.ID, err)
			return nil, fmt.Errorf("%w: lead lookup failed: %v", ErrInternal, err)
		}

		lead, err := uc.leadRepo.Upsert(ctx, &domain.Lead{
			PlaceID:  place.ID,
			Name:     place.Name,
			Address:  place.Address,
			Phone:    place.Phone,
			Website:  place.Website,
			Category: place.Category,
			City:     req.City,
			Rating:   place.Rating,
		})
		if err != nil {
			uc.logger.Error("ScanBusinesses: failed to store lead place_id=%s: %v", place.ID, err)
			return nil, fmt.Errorf("%w: lead store failed: %v", ErrInternal, err)
		}

		if isNew {
			result.NewLeads++
		} else {
			result.KnownLeads++
		}
		result.Leads = append(result.Leads, lead)
	}

	uc.logger.Info("ScanBusinesses: found %d businesses, %d without a real website (%d new, %d known)",
		result.TotalFound, len(result.Leads), result.NewLeads, result.KnownLeads)

	return result, nil
}
