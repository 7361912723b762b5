package referral

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	models "github.com/beingresonated/referral/internal/models"
	redis "github.com/redis/go-redis/v9"
)

// кэш профилей для агрегации цепочек
type CacheService struct {
	client *redis.Client
}

func NewCacheService(addr string, user string, pwd string) (*CacheService, error) {
	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err := db.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{db}, nil
}

func (c *CacheService) GetProfile(ctx context.Context, userId string) (user models.User, err error) {
	val, err := c.client.Get(ctx, "profile:"+userId).Result()
	if errors.Is(err, redis.Nil) {
		return user, models.ErrNotFound
	} else if err != nil {
		return user, err
	}

	err = json.Unmarshal([]byte(val), &user)
	if err != nil {
		return user, fmt.Errorf("profile decode: %w", err)
	}
	return user, nil
}

func (c *CacheService) SetProfile(ctx context.Context, user models.User) (err error) {
	val, err := json.Marshal(user)
	if err != nil {
		return err
	}
	err = c.client.Set(ctx, "profile:"+user.UserID, val, 5*time.Minute).Err()
	if err != nil {
		return err
	}
	return nil
}
