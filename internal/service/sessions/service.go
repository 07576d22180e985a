package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	sessionStore "github.com/m04kA/OtoCare-BookingService/internal/infra/storage/session"
	userRepo "github.com/m04kA/OtoCare-BookingService/internal/infra/storage/user"
	"github.com/m04kA/OtoCare-BookingService/internal/service/sessions/models"
)

// Service управляет жизненным циклом сессий клиентов.
// Сессия создаётся при входе и удаляется при выходе или по истечении срока
type Service struct {
	store    SessionStore
	userRepo UserRepository
	catalog  GarageCatalog
	ttl      time.Duration
	logger   Logger

	now      func() time.Time
	newToken func() string
}

func NewService(
	store SessionStore,
	userRepo UserRepository,
	catalog GarageCatalog,
	ttl time.Duration,
	logger Logger,
) *Service {
	return &Service{
		store:    store,
		userRepo: userRepo,
		catalog:  catalog,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		newToken: func() string { return uuid.NewString() },
	}
}

// Login открывает сессию для зарегистрированного клиента
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.SessionResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	s.logger.Info("Login: phone=%s", phone)

	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user phone=%s not found", phone)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Login: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	now := s.now().UTC()
	sess := &domain.Session{
		Token:     s.newToken(),
		Phone:     user.Phone,
		Name:      user.Name,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.store.Save(ctx, sess, s.ttl); err != nil {
		s.logger.Error("Login: failed to save session for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: Login - save session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: session opened for phone=%s", phone)
	return models.FromDomainSession(sess, true), nil
}

// Resolve возвращает действующую сессию по токену
func (s *Service) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	sess, err := s.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return nil, ErrUnauthorized
		}
		s.logger.Error("Resolve: session store error: %v", err)
		return nil, fmt.Errorf("%w: Resolve - get session: %v", ErrInternal, err)
	}

	if sess.IsExpired(s.now()) {
		return nil, ErrUnauthorized
	}
	return sess, nil
}

// Current возвращает сессию в виде DTO без токена
func (s *Service) Current(ctx context.Context, token string) (*models.SessionResponse, error) {
	sess, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSession(sess, false), nil
}

// Select сохраняет выбранные клиентом город и гараж.
// Срок действия сессии не меняется
func (s *Service) Select(ctx context.Context, token string, req *models.SelectRequest) (*models.SessionResponse, error) {
	sess, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", ErrInvalidInput)
	}

	if req.GarageID != nil {
		if err := s.checkGarage(ctx, city, *req.GarageID); err != nil {
			return nil, err
		}
	}

	sess.City = &city
	sess.GarageID = req.GarageID

	remaining := sess.TTL(s.now())
	if remaining <= 0 {
		return nil, ErrUnauthorized
	}
	if err := s.store.Save(ctx, sess, remaining); err != nil {
		s.logger.Error("Select: failed to save session for phone=%s: %v", sess.Phone, err)
		return nil, fmt.Errorf("%w: Select - save session: %v", ErrInternal, err)
	}

	s.logger.Info("Select: phone=%s city=%s garage=%v", sess.Phone, city, req.GarageID)
	return models.FromDomainSession(sess, false), nil
}

// Logout удаляет сессию. Неизвестный токен не считается ошибкой
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.store.Delete(ctx, token); err != nil {
		s.logger.Error("Logout: session store error: %v", err)
		return fmt.Errorf("%w: Logout - delete session: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) checkGarage(ctx context.Context, city, garageID string) error {
	garages, err := s.catalog.ListGaragesByCity(ctx, city)
	if err != nil {
		s.logger.Error("checkGarage: repository error for city=%s: %v", city, err)
		return fmt.Errorf("%w: checkGarage - repository error: %v", ErrInternal, err)
	}

	for _, g := range garages {
		if g.ID == garageID {
			return nil
		}
	}

	s.logger.Warn("checkGarage: garage=%s not found in city=%s", garageID, city)
	return ErrGarageNotFound
}
