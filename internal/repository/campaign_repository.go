package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/maheshrc27/brandlab-api/internal/models"
)

type CampaignRepository interface {
	List(ctx context.Context, clientID, status string) ([]*models.Campaign, error)
	GetByID(ctx context.Context, id string) (*models.Campaign, error)
	Create(ctx context.Context, c *models.Campaign) error
	Update(ctx context.Context, c *models.Campaign) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type campaignRepository struct {
	db *sql.DB
}

func NewCampaignRepository(db *sql.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

const campaignSelect = `
	SELECT ca.id, ca.title, ca.status, ca.client_id, COALESCE(cl.brand_name, ''),
		ca.objective_id, COALESCE(o.label, ''), ca.channel_id, COALESCE(ch.label, ''),
		COALESCE(ca.target_audience, ''), COALESCE(ca.targeting_recommendation, ''),
		COALESCE(ca.message_hook, ''), COALESCE(ca.tone_recommendation, ''),
		COALESCE(ca.format_recommendation, ''), COALESCE(ca.creator_recommendation, ''),
		ca.created_at, ca.updated_at
	FROM campaigns ca
	LEFT JOIN clients cl ON cl.id = ca.client_id
	LEFT JOIN objectives o ON o.id = ca.objective_id
	LEFT JOIN channels ch ON ch.id = ca.channel_id`

func scanCampaign(row rowScanner) (*models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(
		&c.ID, &c.Title, &c.Status, &c.ClientID, &c.ClientName,
		&c.ObjectiveID, &c.ObjectiveLabel, &c.ChannelID, &c.ChannelLabel,
		&c.TargetAudience, &c.TargetingRecommendation,
		&c.MessageHook, &c.ToneRecommendation,
		&c.FormatRecommendation, &c.CreatorRecommendation,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List filters on client and status when they are non-empty.
func (r *campaignRepository) List(ctx context.Context, clientID, status string) ([]*models.Campaign, error) {
	query := campaignSelect + ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if clientID != "" {
		query += fmt.Sprintf(" AND ca.client_id = $%d", argPos)
		args = append(args, clientID)
		argPos++
	}
	if status != "" {
		query += fmt.Sprintf(" AND ca.status = $%d", argPos)
		args = append(args, status)
	}
	query += " ORDER BY ca.title"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []*models.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRowContext(ctx, campaignSelect+` WHERE ca.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting campaign %s: %w", id, err)
	}
	return c, nil
}

func (r *campaignRepository) Create(ctx context.Context, c *models.Campaign) error {
	query := `
		INSERT INTO campaigns (title, status, client_id, objective_id, channel_id, target_audience,
			targeting_recommendation, message_hook, tone_recommendation, format_recommendation,
			creator_recommendation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		c.Title, c.Status, c.ClientID, c.ObjectiveID, c.ChannelID, c.TargetAudience,
		c.TargetingRecommendation, c.MessageHook, c.ToneRecommendation, c.FormatRecommendation,
		c.CreatorRecommendation,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating campaign: %w", err)
	}
	return nil
}

func (r *campaignRepository) Update(ctx context.Context, c *models.Campaign) (bool, error) {
	query := `
		UPDATE campaigns
		SET title = $1,
			status = $2,
			client_id = $3,
			objective_id = $4,
			channel_id = $5,
			target_audience = $6,
			targeting_recommendation = $7,
			message_hook = $8,
			tone_recommendation = $9,
			format_recommendation = $10,
			creator_recommendation = $11,
			updated_at = NOW()
		WHERE id = $12
	`
	res, err := r.db.ExecContext(ctx, query,
		c.Title, c.Status, c.ClientID, c.ObjectiveID, c.ChannelID, c.TargetAudience,
		c.TargetingRecommendation, c.MessageHook, c.ToneRecommendation, c.FormatRecommendation,
		c.CreatorRecommendation, c.ID,
	)
	if err != nil {
		return false, fmt.Errorf("updating campaign %s: %w", c.ID, err)
	}
	return affected(res)
}

func (r *campaignRepository) Remove(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deleting campaign %s: %w", id, err)
	}
	return affected(res)
}
