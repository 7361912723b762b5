package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type Campaign struct {
	ID           uuid.UUID `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Message      string    `bson:"message" json:"message"`
	RewardPoints int       `bson:"rewardpoints" json:"rewardPoints"`
	CreatedBy    string    `bson:"createdby" json:"createdBy"`
	CreatedAt    time.Time `bson:"createdat" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedat" json:"updatedAt"`
}

type Referral struct {
	ID            uuid.UUID `bson:"id" json:"id"`
	UserID        string    `bson:"userid" json:"userId"`
	CampaignID    uuid.UUID `bson:"campaignid" json:"campaignId"`
	ReferralCode  string    `bson:"referralcode" json:"referralCode"`
	Status        string    `bson:"status" json:"status"`
	ReferredUsers []string  `bson:"referredusers" json:"referredUsers"`
	ReferredBy    string    `bson:"referredby" json:"referredBy"`
	ReferralChain []string  `bson:"referralchain" json:"referralChain"`
	CreatedAt     time.Time `bson:"createdat" json:"createdAt"`
}

// профиль из identity-провайдера, создается только вебхуком
type User struct {
	UserID    string      `bson:"userid" json:"userId"`
	Name      string      `bson:"name" json:"name"`
	Email     string      `bson:"email" json:"email"`
	Phone     string      `bson:"phone" json:"phone"`
	Role      string      `bson:"role" json:"role"`
	Campaigns []uuid.UUID `bson:"campaigns" json:"campaigns"`
	CreatedAt time.Time   `bson:"createdat" json:"createdAt"`
	UpdatedAt time.Time   `bson:"updatedat" json:"updatedAt"`
}

// публичный профиль для ответов агрегации
type Profile struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
