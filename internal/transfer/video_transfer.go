package transfer

import "github.com/maheshrc27/brandlab-api/internal/models"

type VideoInput struct {
	Title       string  `json:"title"`
	CampaignID  *string `json:"campaign_id,omitempty"`
	Format      string  `json:"format"`
	Craft       string  `json:"craft"`
	CreatorName string  `json:"creator_name"`
}

type VideoFilter struct {
	CampaignID string
	Craft      string
	Search     string
}

type VideoDetail struct {
	*models.Video
	AIDescriptionHTML     string `json:"ai_description_html"`
	AIAssessmentHTML      string `json:"ai_assessment_html"`
	AIRecommendationsHTML string `json:"ai_recommendations_html"`
}
