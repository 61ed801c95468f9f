package principaldirectory

import (
	"log/slog"

	httpadapter "ideabazaar/contexts/identity-access/principal-directory/adapters/http"
	"ideabazaar/contexts/identity-access/principal-directory/adapters/memory"
	"ideabazaar/contexts/identity-access/principal-directory/application"
	"ideabazaar/contexts/identity-access/principal-directory/domain/entities"
	"ideabazaar/contexts/identity-access/principal-directory/ports"
)

// Module is the composition surface for the principal directory.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repo,
		Clock:  deps.Clock,
		IDGen:  deps.IDGenerator,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule wires the directory against the in-memory store.
func NewInMemoryModule(seed []entities.Principal, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repo:        store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
