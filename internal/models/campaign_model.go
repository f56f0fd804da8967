package models

import "time"

type Campaign struct {
	ID                      string    `db:"id" json:"id"`
	Title                   string    `db:"title" json:"title"`
	Status                  string    `db:"status" json:"status"` // Idea, Planned, Running, Finished
	ClientID                string    `db:"client_id" json:"client_id"`
	ClientName              string    `db:"client_name" json:"client_name"`
	ObjectiveID             *string   `db:"objective_id" json:"objective_id"`
	ObjectiveLabel          string    `db:"objective_label" json:"objective_label"`
	ChannelID               *string   `db:"channel_id" json:"channel_id"`
	ChannelLabel            string    `db:"channel_label" json:"channel_label"`
	TargetAudience          string    `db:"target_audience" json:"target_audience"`
	TargetingRecommendation string    `db:"targeting_recommendation" json:"targeting_recommendation"`
	MessageHook             string    `db:"message_hook" json:"message_hook"`
	ToneRecommendation      string    `db:"tone_recommendation" json:"tone_recommendation"`
	FormatRecommendation    string    `db:"format_recommendation" json:"format_recommendation"`
	CreatorRecommendation   string    `db:"creator_recommendation" json:"creator_recommendation"`
	CreatedAt               time.Time `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time `db:"updated_at" json:"updated_at"`
}

const (
	CampaignStatusIdea     = "Idea"
	CampaignStatusPlanned  = "Planned"
	CampaignStatusRunning  = "Running"
	CampaignStatusFinished = "Finished"
)
