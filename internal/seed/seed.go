package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appRepos "github.com/eren/campuscore/internal/app/repositories"
)

// defaultDepartments are created on startup so the directory is never empty
var defaultDepartments = []string{
	"Computer Science",
	"Electrical Engineering",
	"Mechanical Engineering",
	"Mathematics",
	"Physics",
}

// CreateDefaultData seeds the department directory. Existing departments are
// left untouched; creation is idempotent by name.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default departments...")

	var finalErr error
	for _, name := range defaultDepartments {
		if _, err := departmentRepo.GetOrCreate(ctx, name); err != nil {
			lgr.Error().Err(err).Str("department", name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
