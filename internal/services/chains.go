package referral

import (
	"context"
	"errors"
	"time"

	interf "github.com/beingresonated/referral/internal/interfaces"
	models "github.com/beingresonated/referral/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ChainService struct {
	referrals interf.ReferralStorage
	users     interf.UserStorage
	cache     interf.ProfileCache
	logger    *zap.Logger
}

func NewChainService(referrals interf.ReferralStorage, users interf.UserStorage, cache interf.ProfileCache, logger *zap.Logger) *ChainService {
	return &ChainService{referrals, users, cache, logger}
}

type Chain struct {
	ReferralID    uuid.UUID        `json:"referralId"`
	CampaignID    uuid.UUID        `json:"campaignId"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	ReferredUsers []models.Profile `json:"referredUsers"`
}

type ChainsResult struct {
	ReferredUsers  []models.Profile `json:"referredUsers"`
	ReferralChains []Chain          `json:"referralChains"`
}

// log
func (s *ChainService) Log(msg string, err error) {
	s.logger.Error(msg,
		zap.String("service", "Chains"),
		zap.Error(err),
	)
}

// Агрегация цепочек: рефералы с referredby == ownerId, дедупликация
// приглашенных, разрешение профилей и сборка цепочек по рефералам.
// Чтений без побочных эффектов, повторный вызов безопасен.
func (s *ChainService) BuildChains(ctx context.Context, ownerId string) (ChainsResult, error) {
	var result ChainsResult

	referrals, err := s.referrals.GetByReferrer(ctx, ownerId)
	if err != nil {
		return result, err
	}

	// уникальные приглашенные в порядке первого появления
	var ids []string
	seen := make(map[string]struct{})
	for _, referral := range referrals {
		for _, uid := range referral.ReferredUsers {
			if _, ok := seen[uid]; ok {
				continue
			}
			seen[uid] = struct{}{}
			ids = append(ids, uid)
		}
	}

	// профили разрешаем параллельно
	profiles := make([]models.Profile, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, uid := range ids {
		g.Go(func() error {
			profile, err := s.resolve(gctx, uid)
			if err != nil {
				return err
			}
			profiles[i] = profile
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	byId := make(map[string]models.Profile, len(profiles))
	for _, p := range profiles {
		byId[p.UserID] = p
	}

	chains := make([]Chain, 0, len(referrals))
	for _, referral := range referrals {
		chain := Chain{
			ReferralID:    referral.ID,
			CampaignID:    referral.CampaignID,
			Status:        referral.Status,
			CreatedAt:     referral.CreatedAt,
			ReferredUsers: make([]models.Profile, 0, len(referral.ReferredUsers)),
		}
		for _, uid := range referral.ReferredUsers {
			p, ok := byId[uid]
			if !ok {
				continue
			}
			chain.ReferredUsers = append(chain.ReferredUsers, p)
		}
		chains = append(chains, chain)
	}

	result.ReferredUsers = profiles
	if result.ReferredUsers == nil {
		result.ReferredUsers = []models.Profile{}
	}
	result.ReferralChains = chains
	return result, nil
}

// Профиль через кэш, промах добирается из хранилища. Неизвестный
// пользователь не валит агрегацию, подставляется заглушка.
func (s *ChainService) resolve(ctx context.Context, userId string) (models.Profile, error) {
	user, err := s.cache.GetProfile(ctx, userId)
	if err == nil {
		return profileOf(userId, user), nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		s.Log("cache get", err)
	}

	user, err = s.users.GetProfile(ctx, userId)
	if errors.Is(err, models.ErrNotFound) {
		return models.Profile{UserID: userId, Name: "Unknown User", Email: "No email"}, nil
	}
	if err != nil {
		return models.Profile{}, err
	}
	if err := s.cache.SetProfile(ctx, user); err != nil {
		s.Log("cache set", err)
	}
	return profileOf(userId, user), nil
}

func profileOf(userId string, user models.User) models.Profile {
	profile := models.Profile{UserID: userId, Name: user.Name, Email: user.Email}
	if profile.Name == "" {
		profile.Name = "Unknown User"
	}
	if profile.Email == "" {
		profile.Email = "No email"
	}
	return profile
}
