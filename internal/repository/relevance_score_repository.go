package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/maheshrc27/brandlab-api/internal/models"
)

type RelevanceScoreRepository interface {
	ListByClient(ctx context.Context, clientID string) ([]*models.RelevanceScore, error)
	GetByID(ctx context.Context, id string) (*models.RelevanceScore, error)
	Update(ctx context.Context, id string, score float64, rationale string) (bool, error)
}

type relevanceScoreRepository struct {
	db *sql.DB
}

func NewRelevanceScoreRepository(db *sql.DB) RelevanceScoreRepository {
	return &relevanceScoreRepository{db: db}
}

const relevanceSelect = `
	SELECT rs.id, rs.client_id, rs.channel_id, COALESCE(ch.label, ''), rs.score,
		COALESCE(rs.rationale, ''), rs.updated_at
	FROM relevance_scores rs
	LEFT JOIN channels ch ON ch.id = rs.channel_id`

func scanRelevanceScore(row rowScanner) (*models.RelevanceScore, error) {
	var s models.RelevanceScore
	if err := row.Scan(&s.ID, &s.ClientID, &s.ChannelID, &s.ChannelLabel, &s.Score, &s.Rationale, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *relevanceScoreRepository) ListByClient(ctx context.Context, clientID string) ([]*models.RelevanceScore, error) {
	rows, err := r.db.QueryContext(ctx, relevanceSelect+` WHERE rs.client_id = $1 ORDER BY rs.score DESC, ch.label`, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing relevance scores for %s: %w", clientID, err)
	}
	defer rows.Close()

	scores := []*models.RelevanceScore{}
	for rows.Next() {
		s, err := scanRelevanceScore(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning relevance score: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

func (r *relevanceScoreRepository) GetByID(ctx context.Context, id string) (*models.RelevanceScore, error) {
	s, err := scanRelevanceScore(r.db.QueryRowContext(ctx, relevanceSelect+` WHERE rs.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting relevance score %s: %w", id, err)
	}
	return s, nil
}

func (r *relevanceScoreRepository) Update(ctx context.Context, id string, score float64, rationale string) (bool, error) {
	query := `
		UPDATE relevance_scores
		SET score = $1,
			rationale = $2,
			updated_at = NOW()
		WHERE id = $3
	`
	res, err := r.db.ExecContext(ctx, query, score, rationale, id)
	if err != nil {
		return false, fmt.Errorf("updating relevance score %s: %w", id, err)
	}
	return affected(res)
}
