package referral

import (
	"context"
	"errors"
	"time"

	interf "github.com/beingresonated/referral/internal/interfaces"
	models "github.com/beingresonated/referral/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// окно временного ряда в днях, границы включительно
const seriesWindowDays = 30

const recentReferralsLimit = 10

type StatsService struct {
	referrals interf.ReferralStorage
	campaigns interf.CampaignStorage
	logger    *zap.Logger
}

func NewStatsService(referrals interf.ReferralStorage, campaigns interf.CampaignStorage, logger *zap.Logger) *StatsService {
	return &StatsService{referrals, campaigns, logger}
}

type ChainSummary struct {
	CampaignID    uuid.UUID `json:"campaignId"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	ReferredUsers []string  `json:"referredUsers"`
}

type OwnerStats struct {
	TotalReferrals     int            `json:"totalReferrals"`
	TotalReferredUsers int            `json:"totalReferredUsers"`
	TotalPointsEarned  int            `json:"totalPointsEarned"`
	ReferralChain      []ChainSummary `json:"referralChain"`
}

type SummaryStats struct {
	TotalReferrals     int               `json:"totalReferrals"`
	CompletedReferrals int               `json:"completedReferrals"`
	PendingReferrals   int               `json:"pendingReferrals"`
	TotalRewardPoints  int               `json:"totalRewardPoints"`
	RecentReferrals    []models.Referral `json:"recentReferrals"`
}

type TimeSeriesPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Статистика реферера (referredby == ownerId). Баллы считаются как
// rewardPoints кампании, умноженные на уникальных приглашенных реферала.
// Формула намеренно отличается от SummaryStats, не объединять.
func (s *StatsService) OwnerStats(ctx context.Context, ownerId string) (OwnerStats, error) {
	var stats OwnerStats

	referrals, err := s.referrals.GetByReferrer(ctx, ownerId)
	if err != nil {
		return stats, err
	}

	unique := make(map[string]struct{})
	for _, referral := range referrals {
		for _, uid := range referral.ReferredUsers {
			unique[uid] = struct{}{}
		}
	}

	for _, referral := range referrals {
		campaign, err := s.campaigns.GetByID(ctx, referral.CampaignID)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return stats, err
		}
		stats.TotalPointsEarned += campaign.RewardPoints * uniqueCount(referral.ReferredUsers)
	}

	stats.TotalReferrals = len(referrals)
	stats.TotalReferredUsers = len(unique)
	stats.ReferralChain = make([]ChainSummary, 0, len(referrals))
	for _, referral := range referrals {
		users := referral.ReferredUsers
		if users == nil {
			users = []string{}
		}
		stats.ReferralChain = append(stats.ReferralChain, ChainSummary{
			CampaignID:    referral.CampaignID,
			Status:        referral.Status,
			CreatedAt:     referral.CreatedAt,
			ReferredUsers: users,
		})
	}
	return stats, nil
}

// Сводка по последним рефералам пользователя (userid == ownerId, не больше
// десяти, новые первыми). Завершенный реферал дает rewardPoints кампании
// один раз, без умножения на приглашенных.
func (s *StatsService) SummaryStats(ctx context.Context, ownerId string) (SummaryStats, error) {
	var stats SummaryStats

	referrals, err := s.referrals.GetRecentByOwner(ctx, ownerId, recentReferralsLimit)
	if err != nil {
		return stats, err
	}

	for _, referral := range referrals {
		if referral.Status != models.StatusCompleted {
			continue
		}
		stats.CompletedReferrals++
		campaign, err := s.campaigns.GetByID(ctx, referral.CampaignID)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return stats, err
		}
		stats.TotalRewardPoints += campaign.RewardPoints
	}

	stats.TotalReferrals = len(referrals)
	stats.PendingReferrals = stats.TotalReferrals - stats.CompletedReferrals
	if referrals == nil {
		referrals = []models.Referral{}
	}
	stats.RecentReferrals = referrals
	return stats, nil
}

// Временной ряд для графика за последние 30 дней
func (s *StatsService) DailyCounts(ctx context.Context, ownerId string) ([]TimeSeriesPoint, error) {
	referrals, err := s.referrals.GetByOwner(ctx, ownerId)
	if err != nil {
		return nil, err
	}
	return buildDailySeries(referrals, time.Now().UTC()), nil
}

// Корзины по календарным дням UTC, диапазон [today-30, today] включительно,
// каждый день засеян нулем. Реферал добавляет в свой день размер
// referredUsers, попавшие за окно отбрасываются молча.
func buildDailySeries(referrals []models.Referral, today time.Time) []TimeSeriesPoint {
	start := today.AddDate(0, 0, -seriesWindowDays)

	keys := make([]string, 0, seriesWindowDays+1)
	counts := make(map[string]int, seriesWindowDays+1)
	for d := 0; d <= seriesWindowDays; d++ {
		key := start.AddDate(0, 0, d).Format("2006-01-02")
		keys = append(keys, key)
		counts[key] = 0
	}

	for _, referral := range referrals {
		key := referral.CreatedAt.UTC().Format("2006-01-02")
		if _, ok := counts[key]; ok {
			counts[key] += len(referral.ReferredUsers)
		}
	}

	series := make([]TimeSeriesPoint, 0, len(keys))
	for _, key := range keys {
		series = append(series, TimeSeriesPoint{Date: key, Count: counts[key]})
	}
	return series
}

func uniqueCount(ids []string) int {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}
