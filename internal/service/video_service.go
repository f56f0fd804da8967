package service

import (
	"context"
	"strings"
	"time"

	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/inflight"
	"github.com/maheshrc27/brandlab-api/internal/markdown"
	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/maheshrc27/brandlab-api/internal/queue"
	"github.com/maheshrc27/brandlab-api/internal/repository"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
	"github.com/maheshrc27/brandlab-api/internal/validation"
	"go.uber.org/zap"
)

type VideoService interface {
	List(ctx context.Context, filter transfer.VideoFilter) ([]*models.Video, error)
	Detail(ctx context.Context, id string) (*transfer.VideoDetail, error)
	Upload(ctx context.Context, in *transfer.VideoInput, upload *transfer.Upload) (*models.Video, error)
	Update(ctx context.Context, id string, in *transfer.VideoInput) (*models.Video, error)
	Remove(ctx context.Context, id string) error
}

type videoService struct {
	vr       repository.VideoRepository
	storage  ObjectStorage
	tasks    TaskEnqueuer
	cache    QueryCache
	deleting *inflight.Set
	logger   *zap.Logger
}

func NewVideoService(
	vr repository.VideoRepository,
	storage ObjectStorage,
	tasks TaskEnqueuer,
	cache QueryCache,
	deleting *inflight.Set,
	logger *zap.Logger) VideoService {
	return &videoService{
		vr:       vr,
		storage:  storage,
		tasks:    tasks,
		cache:    cache,
		deleting: deleting,
		logger:   logger,
	}
}

func (s *videoService) List(ctx context.Context, filter transfer.VideoFilter) ([]*models.Video, error) {
	key := "campaign=" + filter.CampaignID + "&craft=" + filter.Craft
	videos, err := cachedList(ctx, s.cache, s.logger, "videos", key, func(ctx context.Context) ([]*models.Video, error) {
		return s.vr.List(ctx, filter.CampaignID, filter.Craft)
	})
	if err != nil {
		return nil, err
	}
	return FilterVideos(videos, filter.Search), nil
}

func (s *videoService) Detail(ctx context.Context, id string) (*transfer.VideoDetail, error) {
	v, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &transfer.VideoDetail{
		Video:                 v,
		AIDescriptionHTML:     markdown.Render(v.AIDescription),
		AIAssessmentHTML:      markdown.Render(v.AIAssessment),
		AIRecommendationsHTML: markdown.Render(v.AIRecommendations),
	}, nil
}

func (s *videoService) get(ctx context.Context, id string) (*models.Video, error) {
	v, err := s.vr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperrors.NotFound("video", id)
	}
	return v, nil
}

func prepareVideo(in *transfer.VideoInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Format = strings.TrimSpace(in.Format)
	in.CreatorName = strings.TrimSpace(in.CreatorName)
	in.CampaignID = optionalID(in.CampaignID)
	if in.Craft == "" {
		in.Craft = models.CraftBrand
	}
	if in.Craft != models.CraftCreator {
		in.CreatorName = ""
	}
	return validation.ValidateVideo(in)
}

// Upload stores the file first and then records it. When the row cannot be
// written the object is removed again so nothing is left unreferenced.
func (s *videoService) Upload(ctx context.Context, in *transfer.VideoInput, upload *transfer.Upload) (*models.Video, error) {
	if err := prepareVideo(in); err != nil {
		return nil, err
	}

	obj, err := storeUpload(ctx, s.storage, "video", upload, videoTypes)
	if err != nil {
		return nil, err
	}

	v := models.Video{
		Title:       in.Title,
		CampaignID:  in.CampaignID,
		Format:      in.Format,
		Craft:       in.Craft,
		CreatorName: in.CreatorName,
		StorageKey:  obj.Key,
		VideoURL:    obj.URL,
	}
	if err := s.vr.Create(ctx, &v); err != nil {
		s.deleteObjectNow(obj.Key)
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, "videos")

	s.logger.Info("Video uploaded",
		zap.String("video_id", v.ID),
		zap.String("key", obj.Key),
		zap.String("content_type", obj.ContentType),
		zap.Int("bytes", len(upload.Data)),
	)
	return s.get(ctx, v.ID)
}

func (s *videoService) Update(ctx context.Context, id string, in *transfer.VideoInput) (*models.Video, error) {
	if err := prepareVideo(in); err != nil {
		return nil, err
	}

	v := models.Video{
		ID:          id,
		Title:       in.Title,
		CampaignID:  in.CampaignID,
		Format:      in.Format,
		Craft:       in.Craft,
		CreatorName: in.CreatorName,
	}
	ok, err := s.vr.Update(ctx, &v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NotFound("video", id)
	}
	invalidate(ctx, s.cache, s.logger, "videos")

	return s.get(ctx, id)
}

// Remove deletes the row and schedules the object for removal. If the task
// cannot be queued the object is deleted inline.
func (s *videoService) Remove(ctx context.Context, id string) error {
	release, ok := s.deleting.Acquire("videos:" + id)
	if !ok {
		return apperrors.Conflict("video is already being deleted")
	}
	defer release()

	v, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	ok, err = s.vr.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("video", id)
	}
	invalidate(ctx, s.cache, s.logger, "videos")

	if v.StorageKey == "" {
		return nil
	}

	task, err := queue.NewDeleteObjectTask(v.StorageKey)
	if err == nil {
		_, err = s.tasks.EnqueueContext(ctx, task)
	}
	if err != nil {
		s.logger.Warn("Queueing object delete failed, deleting inline", zap.String("key", v.StorageKey), zap.Error(err))
		s.deleteObjectNow(v.StorageKey)
	}

	s.logger.Info("Video deleted", zap.String("video_id", id))
	return nil
}

func (s *videoService) deleteObjectNow(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Error("Removing stored object failed", zap.String("key", key), zap.Error(err))
	}
}
