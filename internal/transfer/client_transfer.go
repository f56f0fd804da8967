package transfer

import "github.com/maheshrc27/brandlab-api/internal/models"

type ClientInput struct {
	BrandName            string  `json:"brand_name"`
	Domain               string  `json:"domain"`
	LogoURL              *string `json:"logo_url,omitempty"`
	CountryID            *string `json:"country_id,omitempty"`
	AgentStatus          string  `json:"agent_status,omitempty"`
	BrandPromise         string  `json:"brand_promise"`
	BrandChallenge       string  `json:"brand_challenge"`
	B2CPrimaryAudience   string  `json:"b2c_primary_audience"`
	B2CSecondaryAudience string  `json:"b2c_secondary_audience"`
	B2BPrimaryAudience   string  `json:"b2b_primary_audience"`
	B2BSecondaryAudience string  `json:"b2b_secondary_audience"`
}

type ClientDetail struct {
	*models.Client
	BrandPromiseHTML         string                   `json:"brand_promise_html"`
	BrandChallengeHTML       string                   `json:"brand_challenge_html"`
	B2CPrimaryAudienceHTML   string                   `json:"b2c_primary_audience_html"`
	B2CSecondaryAudienceHTML string                   `json:"b2c_secondary_audience_html"`
	B2BPrimaryAudienceHTML   string                   `json:"b2b_primary_audience_html"`
	B2BSecondaryAudienceHTML string                   `json:"b2b_secondary_audience_html"`
	RelevanceScores          []*models.RelevanceScore `json:"relevance_scores"`
	Campaigns                []*models.Campaign       `json:"campaigns"`
}

type RelevanceScoreUpdate struct {
	Score     *float64 `json:"score,omitempty"`
	Rationale string   `json:"rationale"`
}

// Upload is a file that was read out of a multipart form.
type Upload struct {
	FileName string
	Data     []byte
}
