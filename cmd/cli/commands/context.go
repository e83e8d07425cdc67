package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/saltsync/rosterd/internal/config"
	"github.com/saltsync/rosterd/pkg/core/roster"
	"github.com/saltsync/rosterd/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
}

// Policy builds the capacity policy from the loaded configuration.
func (a *AppContext) Policy() roster.CapacityPolicy {
	return roster.CapacityPolicy{
		RestDay:      a.Cfg.RestDayWeekday(),
		NightSeats:   a.Cfg.Capacity.NightSeats,
		EveningSeats: a.Cfg.Capacity.EveningSeats,
	}
}
