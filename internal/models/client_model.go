package models

import "time"

type Client struct {
	ID                   string    `db:"id" json:"id"`
	BrandName            string    `db:"brand_name" json:"brand_name"`
	Domain               string    `db:"domain" json:"domain"`
	LogoURL              *string   `db:"logo_url" json:"logo_url"`
	CountryID            *string   `db:"country_id" json:"country_id"`
	CountryName          string    `db:"country_name" json:"country_name"`
	AgentStatus          string    `db:"agent_status" json:"agent_status"` // ready, in_progress
	BrandPromise         string    `db:"brand_promise" json:"brand_promise"`
	BrandChallenge       string    `db:"brand_challenge" json:"brand_challenge"`
	B2CPrimaryAudience   string    `db:"b2c_primary_audience" json:"b2c_primary_audience"`
	B2CSecondaryAudience string    `db:"b2c_secondary_audience" json:"b2c_secondary_audience"`
	B2BPrimaryAudience   string    `db:"b2b_primary_audience" json:"b2b_primary_audience"`
	B2BSecondaryAudience string    `db:"b2b_secondary_audience" json:"b2b_secondary_audience"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

type RelevanceScore struct {
	ID           string    `db:"id" json:"id"`
	ClientID     string    `db:"client_id" json:"client_id"`
	ChannelID    string    `db:"channel_id" json:"channel_id"`
	ChannelLabel string    `db:"channel_label" json:"channel_label"`
	Score        float64   `db:"score" json:"score"`
	Rationale    string    `db:"rationale" json:"rationale"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

const (
	AgentStatusReady      = "ready"
	AgentStatusInProgress = "in_progress"
)
