package referral

import (
	"context"
	"errors"
	"strings"
	"time"

	interf "github.com/beingresonated/referral/internal/interfaces"
	models "github.com/beingresonated/referral/internal/models"
	"go.uber.org/zap"
)

var ErrUserExists = errors.New("user already exists")

type UserService struct {
	users  interf.UserStorage
	cache  interf.ProfileCache
	logger *zap.Logger
}

func NewUserService(users interf.UserStorage, cache interf.ProfileCache, logger *zap.Logger) *UserService {
	return &UserService{users, cache, logger}
}

// полезная нагрузка события user.created от identity-провайдера
type WebhookUser struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// Создание профиля по вебхуку. Дубликат по email отклоняется.
func (s *UserService) CreateFromWebhook(ctx context.Context, data WebhookUser) error {
	if data.ID == "" || len(data.EmailAddresses) == 0 {
		return models.ErrValidation
	}
	email := data.EmailAddresses[0].EmailAddress
	if email == "" {
		return models.ErrValidation
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}

	now := time.Now().UTC()
	user := models.User{
		UserID:    data.ID,
		Name:      strings.TrimSpace(data.FirstName + " " + data.LastName),
		Email:     email,
		Phone:     data.Phone,
		Role:      "referrer",
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = s.users.Create(ctx, user)
	if err != nil {
		return err
	}

	// прогреваем кэш профилей, ошибка кэша не мешает созданию
	if err := s.cache.SetProfile(ctx, user); err != nil {
		s.logger.Error("cache set",
			zap.String("service", "Users"),
			zap.Error(err),
		)
	}
	return nil
}
