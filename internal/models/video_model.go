package models

import "time"

type Video struct {
	ID                string    `db:"id" json:"id"`
	Title             string    `db:"title" json:"title"`
	CampaignID        *string   `db:"campaign_id" json:"campaign_id"`
	CampaignTitle     string    `db:"campaign_title" json:"campaign_title"`
	Format            string    `db:"format" json:"format"`
	Craft             string    `db:"craft" json:"craft"` // Brand, Creator
	CreatorName       string    `db:"creator_name" json:"creator_name"`
	StorageKey        string    `db:"storage_key" json:"-"`
	VideoURL          string    `db:"video_url" json:"video_url"`
	AIDescription     string    `db:"ai_description" json:"ai_description"`
	AIAssessment      string    `db:"ai_assessment" json:"ai_assessment"`
	AIRecommendations string    `db:"ai_recommendations" json:"ai_recommendations"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

const (
	CraftBrand   = "Brand"
	CraftCreator = "Creator"
)
