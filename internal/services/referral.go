package referral

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	interf "github.com/beingresonated/referral/internal/interfaces"
	models "github.com/beingresonated/referral/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const codeLength = 6

type ReferralService struct {
	referrals interf.ReferralStorage
	campaigns interf.CampaignStorage
	appURL    string
	logger    *zap.Logger
}

func NewReferralService(referrals interf.ReferralStorage, campaigns interf.CampaignStorage, appURL string, logger *zap.Logger) *ReferralService {
	return &ReferralService{referrals, campaigns, appURL, logger}
}

type CreateResult struct {
	ReferralCode string `json:"referralCode"`
	ReferralLink string `json:"referralLink"`
}

// результат погашения: реферал + данные кампании владельца
type RedeemResult struct {
	models.Referral
	CampaignName string `json:"campaignName,omitempty"`
	RewardPoints int    `json:"rewardPoints,omitempty"`
	Message      string `json:"message,omitempty"`
	Already      bool   `json:"-"`
}

// Участие в кампании: генерация кода и ссылки.
// Уникальность кода не проверяется, коллизия перезапишется молча.
func (s *ReferralService) Create(ctx context.Context, userId string, campaignId string, referredBy string) (CreateResult, error) {
	var result CreateResult
	if userId == "" || campaignId == "" {
		return result, models.ErrValidation
	}
	cid, err := uuid.Parse(campaignId)
	if err != nil {
		return result, models.ErrValidation
	}

	chain := []string{}
	if referredBy != "" {
		chain = []string{referredBy}
	}
	code := NewCode()
	referral := models.Referral{
		ID:            uuid.New(),
		UserID:        userId,
		CampaignID:    cid,
		ReferralCode:  code,
		Status:        models.StatusPending,
		ReferredUsers: []string{},
		ReferredBy:    referredBy,
		ReferralChain: chain,
		CreatedAt:     time.Now().UTC(),
	}
	err = s.referrals.Create(ctx, referral)
	if err != nil {
		return result, err
	}

	result.ReferralCode = code
	result.ReferralLink = fmt.Sprintf("%s/referral/%s", s.appURL, code)
	return result, nil
}

// Погашение кода новым пользователем. Сам апдейт атомарный, предварительное
// чтение нужно только чтобы отличить неизвестный код от повторного погашения.
func (s *ReferralService) Redeem(ctx context.Context, code string, userId string) (RedeemResult, error) {
	var result RedeemResult

	referral, err := s.referrals.GetByCode(ctx, code)
	if err != nil {
		return result, err
	}

	if contains(referral.ReferredUsers, userId) {
		result.Referral = referral
		result.Message = "User already referred"
		result.Already = true
		return result, nil
	}

	added, err := s.referrals.AddReferredUser(ctx, code, userId, referral.UserID)
	if err != nil {
		return result, err
	}
	// параллельное погашение успело раньше
	if !added {
		result.Referral = referral
		result.Message = "User already referred"
		result.Already = true
		return result, nil
	}

	updated, err := s.referrals.GetByCode(ctx, code)
	if err != nil {
		return result, err
	}
	result.Referral = updated

	campaign, err := s.campaigns.GetByID(ctx, referral.CampaignID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		// кампании нет, отдаем реферал без нее
	case err != nil:
		return result, err
	default:
		result.CampaignName = campaign.Name
		result.RewardPoints = campaign.RewardPoints
	}
	return result, nil
}

func NewCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(b)
}

func contains(list []string, v string) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}
