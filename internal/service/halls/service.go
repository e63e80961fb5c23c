package halls

import (
	"context"
	"errors"
	"fmt"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	hallstorage "github.com/a7jazili/hall-booking-service/internal/infra/storage/hall"
	"github.com/a7jazili/hall-booking-service/internal/service/halls/models"
)

// Service сервис каталога залов: чтение карточки зала и управление
// услугами и блюдами (только менеджер зала)
type Service struct {
	hallRepo HallRepository
	logger   Logger
}

// NewService создает новый сервис каталога залов
func NewService(hallRepo HallRepository, logger Logger) *Service {
	return &Service{
		hallRepo: hallRepo,
		logger:   logger,
	}
}

// GetHall возвращает зал с доступными услугами и блюдами
func (s *Service) GetHall(ctx context.Context, hallID int64) (*models.HallResponse, error) {
	hall, err := s.getHall(ctx, hallID, "GetHall")
	if err != nil {
		return nil, err
	}

	services, err := s.hallRepo.GetServicesByHall(ctx, hallID, true)
	if err != nil {
		s.logger.Error("[GetHall] Failed to get services, hallID=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: GetHall - failed to get services: %v", ErrInternal, err)
	}

	meals, err := s.hallRepo.GetMealsByHall(ctx, hallID, true)
	if err != nil {
		s.logger.Error("[GetHall] Failed to get meals, hallID=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: GetHall - failed to get meals: %v", ErrInternal, err)
	}

	return models.FromDomainHall(hall, services, meals), nil
}

// CreateService добавляет услугу в каталог зала
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if err := s.checkManager(ctx, req.HallID, req.UserID, "CreateService"); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, fmt.Errorf("%w: CreateService - name is required", ErrInvalidInput)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: CreateService - price must not be negative", ErrInvalidInput)
	}

	service := &domain.HallService{
		HallID:      req.HallID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		service.IsAvailable = *req.IsAvailable
	}

	created, err := s.hallRepo.CreateService(ctx, service)
	if err != nil {
		s.logger.Error("[CreateService] Failed to create service, hallID=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: CreateService - failed to create service: %v", ErrInternal, err)
	}

	s.logger.Info("[CreateService] Service created, hallID=%d, serviceID=%d", req.HallID, created.ID)

	return models.FromDomainService(created), nil
}

// UpdateService изменяет услугу каталога. Nil поля запроса не изменяются
func (s *Service) UpdateService(ctx context.Context, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	if err := s.checkManager(ctx, req.HallID, req.UserID, "UpdateService"); err != nil {
		return nil, err
	}

	service, err := s.hallRepo.GetServiceByID(ctx, req.HallID, req.ServiceID)
	if err != nil {
		if errors.Is(err, hallstorage.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: UpdateService - service %d not found in hall %d", ErrServiceNotFound, req.ServiceID, req.HallID)
		}
		s.logger.Error("[UpdateService] Failed to get service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: UpdateService - failed to get service: %v", ErrInternal, err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: UpdateService - name must not be empty", ErrInvalidInput)
		}
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: UpdateService - price must not be negative", ErrInvalidInput)
		}
		service.Price = *req.Price
	}
	if req.IsAvailable != nil {
		service.IsAvailable = *req.IsAvailable
	}

	if err := s.hallRepo.UpdateService(ctx, service); err != nil {
		if errors.Is(err, hallstorage.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: UpdateService - service %d not found in hall %d", ErrServiceNotFound, req.ServiceID, req.HallID)
		}
		s.logger.Error("[UpdateService] Failed to update service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: UpdateService - failed to update service: %v", ErrInternal, err)
	}

	s.logger.Info("[UpdateService] Service updated, hallID=%d, serviceID=%d", req.HallID, req.ServiceID)

	return models.FromDomainService(service), nil
}

// DeleteService удаляет услугу из каталога зала.
// Снимки цен в существующих бронированиях не затрагиваются.
func (s *Service) DeleteService(ctx context.Context, hallID, serviceID, userID int64) error {
	if err := s.checkManager(ctx, hallID, userID, "DeleteService"); err != nil {
		return err
	}

	if err := s.hallRepo.DeleteService(ctx, hallID, serviceID); err != nil {
		if errors.Is(err, hallstorage.ErrServiceNotFound) {
			return fmt.Errorf("%w: DeleteService - service %d not found in hall %d", ErrServiceNotFound, serviceID, hallID)
		}
		s.logger.Error("[DeleteService] Failed to delete service %d: %v", serviceID, err)
		return fmt.Errorf("%w: DeleteService - failed to delete service: %v", ErrInternal, err)
	}

	s.logger.Info("[DeleteService] Service deleted, hallID=%d, serviceID=%d", hallID, serviceID)

	return nil
}

// CreateMeal добавляет блюдо в каталог зала
func (s *Service) CreateMeal(ctx context.Context, req *models.CreateMealRequest) (*models.MealResponse, error) {
	if err := s.checkManager(ctx, req.HallID, req.UserID, "CreateMeal"); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, fmt.Errorf("%w: CreateMeal - name is required", ErrInvalidInput)
	}

	mealType := domain.MealType(req.MealType)
	if !mealType.Valid() {
		return nil, fmt.Errorf("%w: CreateMeal - invalid mealType %q", ErrInvalidInput, req.MealType)
	}

	if req.PricePerPerson.IsNegative() {
		return nil, fmt.Errorf("%w: CreateMeal - pricePerPerson must not be negative", ErrInvalidInput)
	}

	minOrder := req.MinOrder
	if minOrder <= 0 {
		minOrder = 1
	}

	meal := &domain.HallMeal{
		HallID:         req.HallID,
		Name:           req.Name,
		Description:    req.Description,
		MealType:       mealType,
		PricePerPerson: req.PricePerPerson,
		IsVegetarian:   req.IsVegetarian,
		MinOrder:       minOrder,
		IsAvailable:    true,
	}
	if req.IsAvailable != nil {
		meal.IsAvailable = *req.IsAvailable
	}

	created, err := s.hallRepo.CreateMeal(ctx, meal)
	if err != nil {
		s.logger.Error("[CreateMeal] Failed to create meal, hallID=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: CreateMeal - failed to create meal: %v", ErrInternal, err)
	}

	s.logger.Info("[CreateMeal] Meal created, hallID=%d, mealID=%d", req.HallID, created.ID)

	return models.FromDomainMeal(created), nil
}

// UpdateMeal изменяет блюдо каталога. Nil поля запроса не изменяются
func (s *Service) UpdateMeal(ctx context.Context, req *models.UpdateMealRequest) (*models.MealResponse, error) {
	if err := s.checkManager(ctx, req.HallID, req.UserID, "UpdateMeal"); err != nil {
		return nil, err
	}

	meal, err := s.hallRepo.GetMealByID(ctx, req.HallID, req.MealID)
	if err != nil {
		if errors.Is(err, hallstorage.ErrMealNotFound) {
			return nil, fmt.Errorf("%w: UpdateMeal - meal %d not found in hall %d", ErrMealNotFound, req.MealID, req.HallID)
		}
		s.logger.Error("[UpdateMeal] Failed to get meal %d: %v", req.MealID, err)
		return nil, fmt.Errorf("%w: UpdateMeal - failed to get meal: %v", ErrInternal, err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: UpdateMeal - name must not be empty", ErrInvalidInput)
		}
		meal.Name = *req.Name
	}
	if req.Description != nil {
		meal.Description = req.Description
	}
	if req.MealType != nil {
		mealType := domain.MealType(*req.MealType)
		if !mealType.Valid() {
			return nil, fmt.Errorf("%w: UpdateMeal - invalid mealType %q", ErrInvalidInput, *req.MealType)
		}
		meal.MealType = mealType
	}
	if req.PricePerPerson != nil {
		if req.PricePerPerson.IsNegative() {
			return nil, fmt.Errorf("%w: UpdateMeal - pricePerPerson must not be negative", ErrInvalidInput)
		}
		meal.PricePerPerson = *req.PricePerPerson
	}
	if req.IsVegetarian != nil {
		meal.IsVegetarian = *req.IsVegetarian
	}
	if req.MinOrder != nil {
		if *req.MinOrder <= 0 {
			return nil, fmt.Errorf("%w: UpdateMeal - minOrder must be positive", ErrInvalidInput)
		}
		meal.MinOrder = *req.MinOrder
	}
	if req.IsAvailable != nil {
		meal.IsAvailable = *req.IsAvailable
	}

	if err := s.hallRepo.UpdateMeal(ctx, meal); err != nil {
		if errors.Is(err, hallstorage.ErrMealNotFound) {
			return nil, fmt.Errorf("%w: UpdateMeal - meal %d not found in hall %d", ErrMealNotFound, req.MealID, req.HallID)
		}
		s.logger.Error("[UpdateMeal] Failed to update meal %d: %v", req.MealID, err)
		return nil, fmt.Errorf("%w: UpdateMeal - failed to update meal: %v", ErrInternal, err)
	}

	s.logger.Info("[UpdateMeal] Meal updated, hallID=%d, mealID=%d", req.HallID, req.MealID)

	return models.FromDomainMeal(meal), nil
}

// DeleteMeal удаляет блюдо из каталога зала
func (s *Service) DeleteMeal(ctx context.Context, hallID, mealID, userID int64) error {
	if err := s.checkManager(ctx, hallID, userID, "DeleteMeal"); err != nil {
		return err
	}

	if err := s.hallRepo.DeleteMeal(ctx, hallID, mealID); err != nil {
		if errors.Is(err, hallstorage.ErrMealNotFound) {
			return fmt.Errorf("%w: DeleteMeal - meal %d not found in hall %d", ErrMealNotFound, mealID, hallID)
		}
		s.logger.Error("[DeleteMeal] Failed to delete meal %d: %v", mealID, err)
		return fmt.Errorf("%w: DeleteMeal - failed to delete meal: %v", ErrInternal, err)
	}

	s.logger.Info("[DeleteMeal] Meal deleted, hallID=%d, mealID=%d", hallID, mealID)

	return nil
}

// checkManager проверяет, что пользователь является менеджером зала
func (s *Service) checkManager(ctx context.Context, hallID, userID int64, method string) error {
	hall, err := s.getHall(ctx, hallID, method)
	if err != nil {
		return err
	}

	if !hall.IsManagedBy(userID) {
		return fmt.Errorf("%w: %s - user %d is not a manager of hall %d", ErrAccessDenied, method, userID, hallID)
	}

	return nil
}

func (s *Service) getHall(ctx context.Context, hallID int64, method string) (*domain.Hall, error) {
	hall, err := s.hallRepo.GetByID(ctx, hallID)
	if err != nil {
		if errors.Is(err, hallstorage.ErrHallNotFound) {
			return nil, fmt.Errorf("%w: %s - hall %d not found", ErrHallNotFound, method, hallID)
		}
		s.logger.Error("[%s] Failed to get hall %d: %v", method, hallID, err)
		return nil, fmt.Errorf("%w: %s - failed to get hall: %v", ErrInternal, method, err)
	}
	return hall, nil
}
