package referral

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// один пул соединений на процесс, коллекции campaigns/referrals/users
type Store struct {
	mgo       *mongo.Client
	campaigns *mongo.Collection
	referrals *mongo.Collection
	users     *mongo.Collection
}

func NewStore(uri string, dbname string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	options := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database(dbname)

	return &Store{
		mgo:       client,
		campaigns: db.Collection("campaigns"),
		referrals: db.Collection("referrals"),
		users:     db.Collection("users"),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.mgo.Disconnect(ctx)
}

func (s *Store) Campaigns() *CampaignDB {
	return &CampaignDB{s.campaigns}
}

func (s *Store) Referrals() *ReferralDB {
	return &ReferralDB{s.referrals}
}

func (s *Store) Users() *UserDB {
	return &UserDB{s.users}
}
