package repomanager

import (
	"context"
	"database/sql"

	"github.com/plateshare/plateshare/internal/dbx"
	"github.com/plateshare/plateshare/internal/server/repositories/recipes"
	"github.com/plateshare/plateshare/internal/server/repositories/sessions"
	"github.com/plateshare/plateshare/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Recipes(db dbx.DBTX) recipes.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
