package referral

import (
	"context"

	models "github.com/beingresonated/referral/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=./../services/mock_storage_test.go -package=referral . CampaignStorage,ReferralStorage,UserStorage,ProfileCache

type CampaignStorage interface {
	Create(ctx context.Context, campaign models.Campaign) (uuid.UUID, error)
	GetByOwner(ctx context.Context, ownerId string) ([]models.Campaign, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Campaign, error)
}

type ReferralStorage interface {
	Create(ctx context.Context, referral models.Referral) error
	GetByCode(ctx context.Context, code string) (models.Referral, error)
	// выборка по полю userid
	GetByOwner(ctx context.Context, ownerId string) ([]models.Referral, error)
	GetRecentByOwner(ctx context.Context, ownerId string, limit int64) ([]models.Referral, error)
	// выборка по полю referredby, не объединять с GetByOwner
	GetByReferrer(ctx context.Context, referrerId string) ([]models.Referral, error)
	// атомарное погашение кода: false, если userId уже в referredusers
	AddReferredUser(ctx context.Context, code string, userId string, ownerId string) (bool, error)
}

type UserStorage interface {
	GetProfile(ctx context.Context, userId string) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user models.User) error
}

type ProfileCache interface {
	GetProfile(ctx context.Context, userId string) (models.User, error)
	SetProfile(ctx context.Context, user models.User) error
}
