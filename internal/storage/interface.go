package storage

import (
	"context"

	"github.com/dicegame/dicegame/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	// CreatePlayer fails with model.ErrNameTaken if the name is already in
	// use; the check-and-insert is atomic within a backend.
	CreatePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByName(ctx context.Context, name string) (*model.Player, error)
	PlayerExists(ctx context.Context, name string) (bool, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Roll operations
	SaveRoll(ctx context.Context, roll *model.Roll) error
	GetRollsForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Roll, error)
	DeleteRollsForPlayer(ctx context.Context, playerID model.PlayerID) error
}
