package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	userRepo "github.com/m04kA/OtoCare-BookingService/internal/infra/storage/user"
	"github.com/m04kA/OtoCare-BookingService/internal/service/users/models"
)

// Service сервис регистрации клиентов и поиска по телефону
type Service struct {
	userRepo  UserRepository
	txManager TransactionManager
	logger    Logger
}

func NewService(userRepo UserRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Register создаёт пользователя или обновляет имя и email существующего
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	s.logger.Info("Register: phone=%s", req.Phone)

	phone := strings.TrimSpace(req.Phone)
	name := strings.TrimSpace(req.Name)
	if phone == "" || name == "" {
		return nil, fmt.Errorf("%w: phone and name are required", ErrInvalidInput)
	}

	var saved *domain.User
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Upsert(txCtx, &domain.User{Phone: phone, Name: name, Email: req.Email}); err != nil {
			return err
		}

		user, err := s.userRepo.GetByPhone(txCtx, phone)
		if err != nil {
			return err
		}
		saved = user
		return nil
	})
	if err != nil {
		s.logger.Error("Register: failed for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: saved user phone=%s", phone)
	return models.FromDomainUser(saved), nil
}

// GetByPhone возвращает пользователя по номеру телефона
func (s *Service) GetByPhone(ctx context.Context, phone string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByPhone: user phone=%s not found", phone)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByPhone: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: GetByPhone - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}
