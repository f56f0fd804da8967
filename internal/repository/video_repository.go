package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/maheshrc27/brandlab-api/internal/models"
)

type VideoRepository interface {
	List(ctx context.Context, campaignID, craft string) ([]*models.Video, error)
	GetByID(ctx context.Context, id string) (*models.Video, error)
	Create(ctx context.Context, v *models.Video) error
	Update(ctx context.Context, v *models.Video) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type videoRepository struct {
	db *sql.DB
}

func NewVideoRepository(db *sql.DB) VideoRepository {
	return &videoRepository{db: db}
}

const videoSelect = `
	SELECT v.id, v.title, v.campaign_id, COALESCE(ca.title, ''), COALESCE(v.format, ''),
		v.craft, COALESCE(v.creator_name, ''), v.storage_key, v.video_url,
		COALESCE(v.ai_description, ''), COALESCE(v.ai_assessment, ''),
		COALESCE(v.ai_recommendations, ''), v.created_at, v.updated_at
	FROM videos v
	LEFT JOIN campaigns ca ON ca.id = v.campaign_id`

func scanVideo(row rowScanner) (*models.Video, error) {
	var v models.Video
	err := row.Scan(
		&v.ID, &v.Title, &v.CampaignID, &v.CampaignTitle, &v.Format,
		&v.Craft, &v.CreatorName, &v.StorageKey, &v.VideoURL,
		&v.AIDescription, &v.AIAssessment,
		&v.AIRecommendations, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *videoRepository) List(ctx context.Context, campaignID, craft string) ([]*models.Video, error) {
	query := videoSelect + ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if campaignID != "" {
		query += fmt.Sprintf(" AND v.campaign_id = $%d", argPos)
		args = append(args, campaignID)
		argPos++
	}
	if craft != "" {
		query += fmt.Sprintf(" AND v.craft = $%d", argPos)
		args = append(args, craft)
	}
	query += " ORDER BY v.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing videos: %w", err)
	}
	defer rows.Close()

	videos := []*models.Video{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning video: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (r *videoRepository) GetByID(ctx context.Context, id string) (*models.Video, error) {
	v, err := scanVideo(r.db.QueryRowContext(ctx, videoSelect+` WHERE v.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting video %s: %w", id, err)
	}
	return v, nil
}

func (r *videoRepository) Create(ctx context.Context, v *models.Video) error {
	query := `
		INSERT INTO videos (title, campaign_id, format, craft, creator_name, storage_key, video_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		v.Title, v.CampaignID, v.Format, v.Craft, v.CreatorName, v.StorageKey, v.VideoURL,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating video: %w", err)
	}
	return nil
}

// Update only touches the metadata the dashboard can edit; the AI fields
// belong to the upstream agent.
func (r *videoRepository) Update(ctx context.Context, v *models.Video) (bool, error) {
	query := `
		UPDATE videos
		SET title = $1,
			campaign_id = $2,
			format = $3,
			craft = $4,
			creator_name = $5,
			updated_at = NOW()
		WHERE id = $6
	`
	res, err := r.db.ExecContext(ctx, query, v.Title, v.CampaignID, v.Format, v.Craft, v.CreatorName, v.ID)
	if err != nil {
		return false, fmt.Errorf("updating video %s: %w", v.ID, err)
	}
	return affected(res)
}

func (r *videoRepository) Remove(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deleting video %s: %w", id, err)
	}
	return affected(res)
}
