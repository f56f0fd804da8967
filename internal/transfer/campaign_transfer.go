package transfer

import "github.com/maheshrc27/brandlab-api/internal/models"

type CampaignInput struct {
	Title                   string  `json:"title"`
	Status                  string  `json:"status,omitempty"`
	ClientID                string  `json:"client_id"`
	ObjectiveID             *string `json:"objective_id,omitempty"`
	ChannelID               *string `json:"channel_id,omitempty"`
	TargetAudience          string  `json:"target_audience"`
	TargetingRecommendation string  `json:"targeting_recommendation"`
	MessageHook             string  `json:"message_hook"`
	ToneRecommendation      string  `json:"tone_recommendation"`
	FormatRecommendation    string  `json:"format_recommendation"`
	CreatorRecommendation   string  `json:"creator_recommendation"`
}

type CampaignFilter struct {
	ClientID string
	Status   string
	Search   string
}

type CampaignDetail struct {
	*models.Campaign
	TargetingRecommendationHTML string `json:"targeting_recommendation_html"`
	MessageHookHTML             string `json:"message_hook_html"`
	ToneRecommendationHTML      string `json:"tone_recommendation_html"`
	FormatRecommendationHTML    string `json:"format_recommendation_html"`
	CreatorRecommendationHTML   string `json:"creator_recommendation_html"`
}
