package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/maheshrc27/brandlab-api/internal/models"
)

type ClientRepository interface {
	List(ctx context.Context) ([]*models.Client, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	Create(ctx context.Context, c *models.Client) error
	Update(ctx context.Context, c *models.Client) (bool, error)
	UpdateLogo(ctx context.Context, id, logoURL string) (bool, error)
	UpdateAgentStatus(ctx context.Context, id, status string) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

const clientSelect = `
	SELECT c.id, c.brand_name, c.domain, c.logo_url, c.country_id, COALESCE(co.name, ''),
		c.agent_status, COALESCE(c.brand_promise, ''), COALESCE(c.brand_challenge, ''),
		COALESCE(c.b2c_primary_audience, ''), COALESCE(c.b2c_secondary_audience, ''),
		COALESCE(c.b2b_primary_audience, ''), COALESCE(c.b2b_secondary_audience, ''),
		c.created_at, c.updated_at
	FROM clients c
	LEFT JOIN countries co ON co.id = c.country_id`

func scanClient(row rowScanner) (*models.Client, error) {
	var c models.Client
	err := row.Scan(
		&c.ID, &c.BrandName, &c.Domain, &c.LogoURL, &c.CountryID, &c.CountryName,
		&c.AgentStatus, &c.BrandPromise, &c.BrandChallenge,
		&c.B2CPrimaryAudience, &c.B2CSecondaryAudience,
		&c.B2BPrimaryAudience, &c.B2BSecondaryAudience,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*models.Client, error) {
	rows, err := r.db.QueryContext(ctx, clientSelect+` ORDER BY c.brand_name`)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	clients := []*models.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx, clientSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting client %s: %w", id, err)
	}
	return c, nil
}

func (r *clientRepository) Create(ctx context.Context, c *models.Client) error {
	query := `
		INSERT INTO clients (brand_name, domain, logo_url, country_id, agent_status,
			brand_promise, brand_challenge, b2c_primary_audience, b2c_secondary_audience,
			b2b_primary_audience, b2b_secondary_audience)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		c.BrandName, c.Domain, c.LogoURL, c.CountryID, c.AgentStatus,
		c.BrandPromise, c.BrandChallenge, c.B2CPrimaryAudience, c.B2CSecondaryAudience,
		c.B2BPrimaryAudience, c.B2BSecondaryAudience,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}
	return nil
}

// Update keeps the stored logo_url when c.LogoURL is nil and the stored
// agent_status when c.AgentStatus is empty.
func (r *clientRepository) Update(ctx context.Context, c *models.Client) (bool, error) {
	query := `
		UPDATE clients
		SET brand_name = $1,
			domain = $2,
			logo_url = COALESCE($3, logo_url),
			country_id = $4,
			agent_status = COALESCE(NULLIF($5, ''), agent_status),
			brand_promise = $6,
			brand_challenge = $7,
			b2c_primary_audience = $8,
			b2c_secondary_audience = $9,
			b2b_primary_audience = $10,
			b2b_secondary_audience = $11,
			updated_at = NOW()
		WHERE id = $12
	`
	res, err := r.db.ExecContext(ctx, query,
		c.BrandName, c.Domain, c.LogoURL, c.CountryID, c.AgentStatus,
		c.BrandPromise, c.BrandChallenge, c.B2CPrimaryAudience, c.B2CSecondaryAudience,
		c.B2BPrimaryAudience, c.B2BSecondaryAudience, c.ID,
	)
	if err != nil {
		return false, fmt.Errorf("updating client %s: %w", c.ID, err)
	}
	return affected(res)
}

func (r *clientRepository) UpdateLogo(ctx context.Context, id, logoURL string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE clients SET logo_url = $1, updated_at = NOW() WHERE id = $2`, logoURL, id)
	if err != nil {
		return false, fmt.Errorf("updating logo of client %s: %w", id, err)
	}
	return affected(res)
}

func (r *clientRepository) UpdateAgentStatus(ctx context.Context, id, status string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE clients SET agent_status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return false, fmt.Errorf("updating agent status of client %s: %w", id, err)
	}
	return affected(res)
}

func (r *clientRepository) Remove(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deleting client %s: %w", id, err)
	}
	return affected(res)
}
