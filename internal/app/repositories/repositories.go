package repositories

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	EventRepository       *EventRepository
	NewsRepository        *NewsRepository
	ForumRepository       *ForumRepository
	GalleryRepository     *GalleryRepository
	DonationRepository    *DonationRepository
	BoardMinuteRepository *BoardMinuteRepository
}

// NewRepositories initializes all repositories on one connection handle
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(conn),
		EventRepository:       NewEventRepository(conn),
		NewsRepository:        NewNewsRepository(conn),
		ForumRepository:       NewForumRepository(conn),
		GalleryRepository:     NewGalleryRepository(conn),
		DonationRepository:    NewDonationRepository(conn),
		BoardMinuteRepository: NewBoardMinuteRepository(conn),
	}
}

// statementBuilder is squirrel configured for PostgreSQL placeholders
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// newID assigns the opaque identifier of a new record
func newID() string {
	return uuid.New().String()
}

// nowUTC is overridable in tests
var nowUTC = func() time.Time {
	return time.Now().UTC()
}
