package referral

import (
	"context"
	"errors"
	"fmt"

	models "github.com/beingresonated/referral/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CampaignDB struct {
	coll *mongo.Collection
}

func (c *CampaignDB) Create(ctx context.Context, campaign models.Campaign) (uuid.UUID, error) {
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}
	_, err := c.coll.InsertOne(ctx, campaign)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: insert campaign: %v", models.ErrStore, err)
	}
	return campaign.ID, nil
}

func (c *CampaignDB) GetByOwner(ctx context.Context, ownerId string) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	filter := bson.M{"createdby": ownerId}
	result, err := c.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: find campaigns: %v", models.ErrStore, err)
	}

	for result.Next(ctx) {
		var campaign models.Campaign
		err := result.Decode(&campaign)
		if err != nil {
			return nil, fmt.Errorf("%w: decode campaign: %v", models.ErrStore, err)
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, nil
}

func (c *CampaignDB) GetByID(ctx context.Context, id uuid.UUID) (models.Campaign, error) {
	var campaign models.Campaign
	filter := bson.M{"id": id}
	err := c.coll.FindOne(ctx, filter).Decode(&campaign)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return campaign, models.ErrNotFound
	}
	if err != nil {
		return campaign, fmt.Errorf("%w: find campaign: %v", models.ErrStore, err)
	}
	return campaign, nil
}
