package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/maheshrc27/brandlab-api/internal/realtime"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
)

const (
	clientID   = "5f0c6f8e-3b8a-4e7e-9a57-2b1e3c4d5e6f"
	campaignID = "8d1b2c3e-4f5a-4b6c-8d7e-9f0a1b2c3d4e"
)

// mp4Header is enough for content sniffing to report video/mp4.
var mp4Header = []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm', 0x00, 0x00, 0x02, 0x00, 'i', 's', 'o', 'm', 'i', 's', 'o', '2'}

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R'}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
	putErr  error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Put(_ context.Context, key string, body []byte, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = body
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.example/" + key
}

type fakeEnqueuer struct {
	mu    sync.Mutex
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{Type: task.Type()}, nil
}

type fakeCache struct {
	invalidated []string
}

func (f *fakeCache) Lookup(context.Context, string, string, any) (bool, string, error) {
	return false, "", nil
}
func (f *fakeCache) StoreAt(context.Context, string, any) error { return nil }
func (f *fakeCache) Invalidate(_ context.Context, table string) error {
	f.invalidated = append(f.invalidated, table)
	return nil
}

type fakeClientRepo struct {
	mu       sync.Mutex
	clients  map[string]*models.Client
	seq      int
	removing chan struct{}
	proceed  chan struct{}
}

func newFakeClientRepo(clients ...*models.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: map[string]*models.Client{}}
	for _, c := range clients {
		r.clients[c.ID] = c
	}
	return r
}

func (r *fakeClientRepo) List(context.Context) ([]*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Client{}
	for _, c := range r.clients {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) Create(_ context.Context, c *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	c.ID = fmt.Sprintf("client-%d", r.seq)
	c.CreatedAt = time.Now()
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *models.Client) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.clients[c.ID]
	if !ok {
		return false, nil
	}
	cp := *c
	if cp.LogoURL == nil {
		cp.LogoURL = stored.LogoURL
	}
	if cp.AgentStatus == "" {
		cp.AgentStatus = stored.AgentStatus
	}
	r.clients[c.ID] = &cp
	return true, nil
}

func (r *fakeClientRepo) UpdateLogo(_ context.Context, id, logoURL string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return false, nil
	}
	c.LogoURL = &logoURL
	return true, nil
}

func (r *fakeClientRepo) UpdateAgentStatus(_ context.Context, id, status string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return false, nil
	}
	c.AgentStatus = status
	return true, nil
}

// Remove blocks between the removing and proceed signals when they are set.
func (r *fakeClientRepo) Remove(_ context.Context, id string) (bool, error) {
	if r.removing != nil {
		r.removing <- struct{}{}
		<-r.proceed
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[id]; !ok {
		return false, nil
	}
	delete(r.clients, id)
	return true, nil
}

type fakeRelevanceRepo struct {
	scores map[string]*models.RelevanceScore
}

func (r *fakeRelevanceRepo) ListByClient(_ context.Context, clientID string) ([]*models.RelevanceScore, error) {
	out := []*models.RelevanceScore{}
	for _, s := range r.scores {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRelevanceRepo) GetByID(_ context.Context, id string) (*models.RelevanceScore, error) {
	return r.scores[id], nil
}

func (r *fakeRelevanceRepo) Update(_ context.Context, id string, score float64, rationale string) (bool, error) {
	s, ok := r.scores[id]
	if !ok {
		return false, nil
	}
	s.Score = score
	s.Rationale = rationale
	return true, nil
}

type fakeCampaignRepo struct {
	campaigns map[string]*models.Campaign
	seq       int
}

func newFakeCampaignRepo(campaigns ...*models.Campaign) *fakeCampaignRepo {
	r := &fakeCampaignRepo{campaigns: map[string]*models.Campaign{}}
	for _, c := range campaigns {
		r.campaigns[c.ID] = c
	}
	return r
}

func (r *fakeCampaignRepo) List(_ context.Context, clientID, status string) ([]*models.Campaign, error) {
	out := []*models.Campaign{}
	for _, c := range r.campaigns {
		if clientID != "" && c.ClientID != clientID {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCampaignRepo) GetByID(_ context.Context, id string) (*models.Campaign, error) {
	return r.campaigns[id], nil
}

func (r *fakeCampaignRepo) Create(_ context.Context, c *models.Campaign) error {
	r.seq++
	c.ID = fmt.Sprintf("campaign-%d", r.seq)
	cp := *c
	r.campaigns[c.ID] = &cp
	return nil
}

func (r *fakeCampaignRepo) Update(_ context.Context, c *models.Campaign) (bool, error) {
	if _, ok := r.campaigns[c.ID]; !ok {
		return false, nil
	}
	cp := *c
	r.campaigns[c.ID] = &cp
	return true, nil
}

func (r *fakeCampaignRepo) Remove(_ context.Context, id string) (bool, error) {
	if _, ok := r.campaigns[id]; !ok {
		return false, nil
	}
	delete(r.campaigns, id)
	return true, nil
}

type fakeVideoRepo struct {
	videos    map[string]*models.Video
	seq       int
	createErr error
}

func newFakeVideoRepo(videos ...*models.Video) *fakeVideoRepo {
	r := &fakeVideoRepo{videos: map[string]*models.Video{}}
	for _, v := range videos {
		r.videos[v.ID] = v
	}
	return r
}

func (r *fakeVideoRepo) List(_ context.Context, campaignID, craft string) ([]*models.Video, error) {
	out := []*models.Video{}
	for _, v := range r.videos {
		if campaignID != "" && (v.CampaignID == nil || *v.CampaignID != campaignID) {
			continue
		}
		if craft != "" && v.Craft != craft {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *fakeVideoRepo) GetByID(_ context.Context, id string) (*models.Video, error) {
	return r.videos[id], nil
}

func (r *fakeVideoRepo) Create(_ context.Context, v *models.Video) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	v.ID = fmt.Sprintf("video-%d", r.seq)
	cp := *v
	r.videos[v.ID] = &cp
	return nil
}

func (r *fakeVideoRepo) Update(_ context.Context, v *models.Video) (bool, error) {
	existing, ok := r.videos[v.ID]
	if !ok {
		return false, nil
	}
	cp := *v
	cp.StorageKey = existing.StorageKey
	cp.VideoURL = existing.VideoURL
	r.videos[v.ID] = &cp
	return true, nil
}

func (r *fakeVideoRepo) Remove(_ context.Context, id string) (bool, error) {
	if _, ok := r.videos[id]; !ok {
		return false, nil
	}
	delete(r.videos, id)
	return true, nil
}

type fakeUserRepo struct {
	users map[string]*models.StaffUser
	seq   int
}

func newFakeUserRepo(users ...*models.StaffUser) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.StaffUser{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.StaffUser, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.StaffUser, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByGoogleID(_ context.Context, googleID string) (*models.StaffUser, error) {
	for _, u := range r.users {
		if googleID != "" && u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.StaffUser) error {
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.StaffUser) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.New("no such user")
	}
	r.users[user.ID] = user
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*models.Session
	seq      int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*models.Session{}}
}

func (r *fakeSessionRepo) Create(_ context.Context, s *models.Session) error {
	r.seq++
	s.ID = fmt.Sprintf("session-%d", r.seq)
	s.CreatedAt = time.Now()
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id string) (*models.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, id string) (bool, error) {
	s, ok := r.sessions[id]
	if !ok || s.RevokedAt != nil {
		return false, nil
	}
	now := time.Now()
	s.RevokedAt = &now
	return true, nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for id, s := range r.sessions {
		if !s.Active(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

type fakeGoogle struct {
	info *transfer.GoogleUserInfo
	err  error
}

func (f *fakeGoogle) AuthCodeURL(state string) string {
	return "https://accounts.google.example/auth?state=" + state
}

func (f *fakeGoogle) Exchange(context.Context, string) (*transfer.GoogleUserInfo, error) {
	return f.info, f.err
}

type recordingPublisher struct {
	events []realtime.Event
}

func (p *recordingPublisher) Publish(ev realtime.Event) {
	p.events = append(p.events, ev)
}
