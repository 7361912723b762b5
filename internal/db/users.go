package referral

import (
	"context"
	"errors"
	"fmt"

	models "github.com/beingresonated/referral/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserDB struct {
	coll *mongo.Collection
}

func (u *UserDB) GetProfile(ctx context.Context, userId string) (models.User, error) {
	var user models.User
	filter := bson.M{"userid": userId}
	err := u.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user, models.ErrNotFound
	}
	if err != nil {
		return user, fmt.Errorf("%w: find user: %v", models.ErrStore, err)
	}
	return user, nil
}

func (u *UserDB) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	filter := bson.M{"email": email}
	err := u.coll.FindOne(ctx, filter).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: find user by email: %v", models.ErrStore, err)
	}
	return true, nil
}

func (u *UserDB) Create(ctx context.Context, user models.User) error {
	_, err := u.coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: insert user: %v", models.ErrStore, err)
	}
	return nil
}
