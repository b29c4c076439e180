package tariffs

import (
	"context"
	"errors"
	"fmt"

	"github.com/maineblanc/camping-booking/internal/domain"
	tariffRepo "github.com/maineblanc/camping-booking/internal/infra/storage/tariff"
	"github.com/maineblanc/camping-booking/internal/service/tariffs/models"
)

// Service читает тарифную сетку
type Service struct {
	tariffRepo   TariffRepository
	capacityRepo CapacityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса тарифов
func NewService(tariffRepo TariffRepository, capacityRepo CapacityRepository, logger Logger) *Service {
	return &Service{
		tariffRepo:   tariffRepo,
		capacityRepo: capacityRepo,
		logger:       logger,
	}
}

// Load загружает тарифы и доплаты для калькулятора
// Без набора доплат расчет продолжается, все доплаты нулевые
func (s *Service) Load(ctx context.Context) (*domain.Tariffs, error) {
	rates, err := s.tariffRepo.GetRates(ctx, nil)
	if err != nil {
		s.logger.Error("LoadTariffs: failed to get rates: %v", err)
		return nil, fmt.Errorf("%w: Load - get rates: %w", ErrInternal, err)
	}

	supplements, err := s.tariffRepo.GetSupplements(ctx)
	if err != nil {
		if !errors.Is(err, tariffRepo.ErrSupplementsNotFound) {
			s.logger.Error("LoadTariffs: failed to get supplements: %v", err)
			return nil, fmt.Errorf("%w: Load - get supplements: %w", ErrInternal, err)
		}
		s.logger.Warn("LoadTariffs: supplement set is not configured, supplements are free")
		supplements = nil
	}

	return &domain.Tariffs{
		Rates:       rates,
		Supplements: supplements,
	}, nil
}

// GetSheet тарифная сетка по категориям с числом мест
func (s *Service) GetSheet(ctx context.Context) (*models.TariffSheetResponse, error) {
	s.logger.Info("GetTariffs: building tariff sheet")

	tariffs, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	limits, err := s.capacityRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetTariffs: failed to get capacity limits: %v", err)
		return nil, fmt.Errorf("%w: GetSheet - get capacity limits: %v", ErrInternal, err)
	}

	sheet := models.FromDomain(tariffs, limits)

	s.logger.Info("GetTariffs: %d rates, %d categories", len(tariffs.Rates), len(sheet.Categories))
	return sheet, nil
}
