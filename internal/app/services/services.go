// Package services holds the business rules behind each route. Services
// depend on the narrow store interfaces below, which the repositories satisfy.
package services

import (
	"context"

	"github.com/alumnet/backend/internal/app/models"
)

// UserStore is the user persistence used by auth, profile, directory and admin flows
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) (*models.User, error)
	ListDirectory(ctx context.Context, filter models.DirectoryFilter) ([]*models.User, error)
	ListAll(ctx context.Context) ([]*models.User, error)
	SetApproved(ctx context.Context, id string, approved bool) (*models.User, bool, error)
}

// EventStore persists events
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	List(ctx context.Context) ([]*models.Event, error)
}

// NewsStore persists news
type NewsStore interface {
	Create(ctx context.Context, news *models.News) error
	List(ctx context.Context) ([]*models.News, error)
}

// ForumStore persists forum threads
type ForumStore interface {
	Create(ctx context.Context, thread *models.ForumThread) error
	List(ctx context.Context) ([]*models.ForumThread, error)
	GetByID(ctx context.Context, id string) (*models.ForumThread, error)
	AppendReply(ctx context.Context, threadID string, reply models.Reply) (*models.ForumThread, error)
}

// GalleryStore persists gallery items
type GalleryStore interface {
	Create(ctx context.Context, item *models.GalleryItem) error
	List(ctx context.Context) ([]*models.GalleryItem, error)
}

// BoardMinuteStore persists board minutes
type BoardMinuteStore interface {
	Create(ctx context.Context, minute *models.BoardMinute) error
	List(ctx context.Context) ([]*models.BoardMinute, error)
}

// DonationStore persists verified donations
type DonationStore interface {
	InsertIfAbsent(ctx context.Context, donation *models.Donation) (bool, error)
	List(ctx context.Context) ([]*models.Donation, error)
}

// Services groups every service the controllers use
type Services struct {
	Auth        AuthService
	User        UserService
	Event       EventService
	News        NewsService
	Forum       ForumService
	Gallery     GalleryService
	BoardMinute BoardMinuteService
	Donation    DonationService
}
