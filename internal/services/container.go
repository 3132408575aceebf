package services

import (
	"github.com/rs/zerolog"

	"task-tracker/internal/repository/sqlite"
)

// ContainerOptions configures NewServiceContainer
type ContainerOptions struct {
	StorageKey   string
	DateLayout   string
	ShareCommand string
	Clipboard    Clipboard
	Sharer       Sharer
	TimeService  TimeService
	Logger       zerolog.Logger
}

// NewServiceContainer wires the services over one repository.
// An explicit Sharer wins over ShareCommand.
func NewServiceContainer(repo sqlite.Repository, opts ContainerOptions) *ServiceContainer {
	timeService := opts.TimeService
	if timeService == nil {
		timeService = NewTimeService()
	}

	sharer := opts.Sharer
	if sharer == nil && opts.ShareCommand != "" {
		sharer = NewCommandSharer(opts.ShareCommand)
	}

	dateLayout := opts.DateLayout
	if dateLayout == "" {
		dateLayout = "01/02/2006"
	}

	return &ServiceContainer{
		TimeService: timeService,
		Store:       NewTaskStore(repo, opts.StorageKey, timeService, opts.Logger),
		Projector:   NewViewProjector(),
		Share:       NewShareService(sharer, opts.Clipboard, timeService, dateLayout, opts.Logger),
	}
}
