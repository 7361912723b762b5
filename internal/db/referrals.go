package referral

import (
	"context"
	"errors"
	"fmt"

	models "github.com/beingresonated/referral/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReferralDB struct {
	coll *mongo.Collection
}

func (r *ReferralDB) Create(ctx context.Context, referral models.Referral) error {
	_, err := r.coll.InsertOne(ctx, referral)
	if err != nil {
		return fmt.Errorf("%w: insert referral: %v", models.ErrStore, err)
	}
	return nil
}

func (r *ReferralDB) GetByCode(ctx context.Context, code string) (models.Referral, error) {
	var referral models.Referral
	filter := bson.M{"referralcode": code}
	err := r.coll.FindOne(ctx, filter).Decode(&referral)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return referral, models.ErrNotFound
	}
	if err != nil {
		return referral, fmt.Errorf("%w: find referral: %v", models.ErrStore, err)
	}
	return referral, nil
}

// рефералы, созданные пользователем (поле userid)
func (r *ReferralDB) GetByOwner(ctx context.Context, ownerId string) ([]models.Referral, error) {
	return r.find(ctx, bson.M{"userid": ownerId}, nil)
}

// последние рефералы пользователя, новые первыми
func (r *ReferralDB) GetRecentByOwner(ctx context.Context, ownerId string, limit int64) ([]models.Referral, error) {
	opts := options.Find().SetSort(bson.M{"createdat": -1}).SetLimit(limit)
	return r.find(ctx, bson.M{"userid": ownerId}, opts)
}

// рефералы, где пользователь выступил реферером (поле referredby)
func (r *ReferralDB) GetByReferrer(ctx context.Context, referrerId string) ([]models.Referral, error) {
	return r.find(ctx, bson.M{"referredby": referrerId}, nil)
}

func (r *ReferralDB) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Referral, error) {
	var referrals []models.Referral
	var result *mongo.Cursor
	var err error
	if opts != nil {
		result, err = r.coll.Find(ctx, filter, opts)
	} else {
		result, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find referrals: %v", models.ErrStore, err)
	}
	for result.Next(ctx) {
		var referral models.Referral
		err := result.Decode(&referral)
		if err != nil {
			return nil, fmt.Errorf("%w: decode referral: %v", models.ErrStore, err)
		}
		referrals = append(referrals, referral)
	}
	return referrals, nil
}

// Погашение кода одним условным обновлением: фильтр отсекает уже
// добавленного пользователя, поэтому параллельные погашения не теряются.
// false — документ не изменен (userId уже в referredusers).
func (r *ReferralDB) AddReferredUser(ctx context.Context, code string, userId string, ownerId string) (bool, error) {
	filter := bson.M{
		"referralcode":  code,
		"referredusers": bson.M{"$ne": userId},
	}
	update := bson.M{
		"$push": bson.M{
			"referredusers": userId,
			"referralchain": ownerId,
		},
		"$set": bson.M{"status": models.StatusCompleted},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("%w: update referral: %v", models.ErrStore, err)
	}
	return result.ModifiedCount == 1, nil
}
