// Package testutil provides in-memory stores and fake adapters for tests.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/pkg/apperrors"
)

// Clock hands out strictly increasing timestamps so newest-first ordering is deterministic
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts at start
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Next advances by one second
func (c *Clock) Next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

var defaultClock = NewClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

// UserStore is an in-memory user store
type UserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

// NewUserStore creates an empty store
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*models.User)}
}

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

// Create inserts a user, enforcing unique emails
func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	if user.Role == "" {
		user.Role = models.RoleAlumni
	}
	user.ID = uuid.New().String()
	user.CreatedAt = defaultClock.Next()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = cloneUser(user)
	return nil
}

// GetByEmail finds a user case-insensitively
func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// GetByID finds a user by ID
func (s *UserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// EmailExists reports whether email is taken
func (s *UserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	return err == nil, nil
}

// UpdateProfile applies non-nil fields
func (s *UserStore) UpdateProfile(_ context.Context, id string, upd models.ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Location != nil {
		u.Location = *upd.Location
	}
	if upd.GraduationYear != nil {
		u.GraduationYear = *upd.GraduationYear
	}
	if upd.ProfilePic != nil {
		u.ProfilePic = *upd.ProfilePic
	}
	return cloneUser(u), nil
}

// ListDirectory filters approved users, sorted by name
func (s *UserStore) ListDirectory(_ context.Context, filter models.DirectoryFilter) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.User, 0)
	for _, u := range s.users {
		if !u.IsApproved {
			continue
		}
		if filter.Year != nil && u.GraduationYear != *filter.Year {
			continue
		}
		if filter.Location != "" && !strings.Contains(strings.ToLower(u.Location), strings.ToLower(filter.Location)) {
			continue
		}
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ListAll returns users newest first
func (s *UserStore) ListAll(_ context.Context) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// SetApproved writes the flag and returns the previous value
func (s *UserStore) SetApproved(_ context.Context, id string, approved bool) (*models.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, false, apperrors.ErrUserNotFound
	}
	was := u.IsApproved
	u.IsApproved = approved
	return cloneUser(u), was, nil
}

// Count returns the number of stored users
func (s *UserStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Put stores u as-is, assigning an ID when empty
func (s *UserStore) Put(u *models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = models.RoleAlumni
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = defaultClock.Next()
	}
	s.users[u.ID] = cloneUser(u)
	return u
}

// name resolves display names for the other stores
func (s *UserStore) name(id string) string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return u.Name
	}
	return ""
}

// EventStore is an in-memory event store
type EventStore struct {
	mu     sync.Mutex
	users  *UserStore
	events []*models.Event
}

// NewEventStore creates an empty store; users resolves creator names
func NewEventStore(users *UserStore) *EventStore {
	return &EventStore{users: users}
}

// Create inserts an event
func (s *EventStore) Create(_ context.Context, e *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = uuid.New().String()
	e.CreatedAt = defaultClock.Next()
	c := *e
	s.events = append(s.events, &c)
	return nil
}

// List returns events by date descending
func (s *EventStore) List(_ context.Context) ([]*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Event, 0, len(s.events))
	for _, e := range s.events {
		c := *e
		c.CreatorName = s.users.name(e.CreatorID)
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// NewsStore is an in-memory news store
type NewsStore struct {
	mu    sync.Mutex
	users *UserStore
	news  []*models.News
}

// NewNewsStore creates an empty store
func NewNewsStore(users *UserStore) *NewsStore {
	return &NewsStore{users: users}
}

// Create inserts news
func (s *NewsStore) Create(_ context.Context, n *models.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = uuid.New().String()
	if n.Date.IsZero() {
		n.Date = defaultClock.Next()
	}
	c := *n
	s.news = append(s.news, &c)
	return nil
}

// List returns news newest first
func (s *NewsStore) List(_ context.Context) ([]*models.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.News, 0, len(s.news))
	for i := len(s.news) - 1; i >= 0; i-- {
		c := *s.news[i]
		c.AuthorName = s.users.name(c.AuthorID)
		out = append(out, &c)
	}
	return out, nil
}

// ForumStore is an in-memory forum store
type ForumStore struct {
	mu      sync.Mutex
	users   *UserStore
	threads []*models.ForumThread
}

// NewForumStore creates an empty store
func NewForumStore(users *UserStore) *ForumStore {
	return &ForumStore{users: users}
}

func (s *ForumStore) view(t *models.ForumThread) *models.ForumThread {
	c := *t
	c.AuthorName = s.users.name(t.AuthorID)
	c.Replies = make([]models.Reply, len(t.Replies))
	for i, r := range t.Replies {
		r.AuthorName = s.users.name(r.Author)
		c.Replies[i] = r
	}
	return &c
}

// Create inserts a thread
func (s *ForumStore) Create(_ context.Context, t *models.ForumThread) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.New().String()
	t.Date = defaultClock.Next()
	t.Replies = make([]models.Reply, 0)
	c := *t
	s.threads = append(s.threads, &c)
	return nil
}

// List returns threads newest first
func (s *ForumStore) List(_ context.Context) ([]*models.ForumThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.ForumThread, 0, len(s.threads))
	for i := len(s.threads) - 1; i >= 0; i-- {
		out = append(out, s.view(s.threads[i]))
	}
	return out, nil
}

// GetByID finds a thread
func (s *ForumStore) GetByID(_ context.Context, id string) (*models.ForumThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.threads {
		if t.ID == id {
			return s.view(t), nil
		}
	}
	return nil, apperrors.ErrThreadNotFound
}

// AppendReply appends under the store lock
func (s *ForumStore) AppendReply(_ context.Context, threadID string, reply models.Reply) (*models.ForumThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.threads {
		if t.ID == threadID {
			if reply.Date.IsZero() {
				reply.Date = defaultClock.Next()
			}
			reply.AuthorName = ""
			t.Replies = append(t.Replies, reply)
			return s.view(t), nil
		}
	}
	return nil, apperrors.ErrThreadNotFound
}

// GalleryStore is an in-memory gallery store
type GalleryStore struct {
	mu    sync.Mutex
	users *UserStore
	items []*models.GalleryItem
}

// NewGalleryStore creates an empty store
func NewGalleryStore(users *UserStore) *GalleryStore {
	return &GalleryStore{users: users}
}

// Create inserts an item
func (s *GalleryStore) Create(_ context.Context, g *models.GalleryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = uuid.New().String()
	g.Date = defaultClock.Next()
	c := *g
	s.items = append(s.items, &c)
	return nil
}

// List returns items newest first
func (s *GalleryStore) List(_ context.Context) ([]*models.GalleryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.GalleryItem, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		c := *s.items[i]
		c.UploaderName = s.users.name(c.UploaderID)
		out = append(out, &c)
	}
	return out, nil
}

// BoardMinuteStore is an in-memory board minute store
type BoardMinuteStore struct {
	mu      sync.Mutex
	minutes []*models.BoardMinute
}

// NewBoardMinuteStore creates an empty store
func NewBoardMinuteStore() *BoardMinuteStore {
	return &BoardMinuteStore{}
}

// Create inserts a minute
func (s *BoardMinuteStore) Create(_ context.Context, m *models.BoardMinute) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = uuid.New().String()
	m.Date = defaultClock.Next()
	c := *m
	s.minutes = append(s.minutes, &c)
	return nil
}

// List returns minutes newest first
func (s *BoardMinuteStore) List(_ context.Context) ([]*models.BoardMinute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.BoardMinute, 0, len(s.minutes))
	for i := len(s.minutes) - 1; i >= 0; i-- {
		c := *s.minutes[i]
		out = append(out, &c)
	}
	return out, nil
}

// DonationStore is an in-memory donation store with unique references
type DonationStore struct {
	mu        sync.Mutex
	users     *UserStore
	donations []*models.Donation
}

// NewDonationStore creates an empty store
func NewDonationStore(users *UserStore) *DonationStore {
	return &DonationStore{users: users}
}

// InsertIfAbsent inserts unless the reference exists
func (s *DonationStore) InsertIfAbsent(_ context.Context, d *models.Donation) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.donations {
		if existing.Reference == d.Reference {
			return false, nil
		}
	}
	d.ID = uuid.New().String()
	d.Date = defaultClock.Next()
	c := *d
	s.donations = append(s.donations, &c)
	return true, nil
}

// List returns donations newest first
func (s *DonationStore) List(_ context.Context) ([]*models.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Donation, 0, len(s.donations))
	for i := len(s.donations) - 1; i >= 0; i-- {
		c := *s.donations[i]
		c.DonorName = s.users.name(c.DonorID)
		out = append(out, &c)
	}
	return out, nil
}

// Count returns the number of stored donations
func (s *DonationStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.donations)
}
