// internal/repository/migrate.go
package repository

import (
	"fmt"

	"github.com/estateflow/crm/internal/model"
	"gorm.io/gorm"
)

// Migrate creates the schema plus the two partial unique indexes that carry
// the core invariants. GORM tags cannot express partial indexes, so they
// are raw statements here; they must exist before the application takes
// writes, because assign/transfer/createRoot rely on them as the final
// guard against check-then-act races.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`).Error; err != nil {
		return fmt.Errorf("creating citext extension: %w", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.TeamAssignment{},
		&model.Lead{},
		&model.Property{},
		&model.Viewing{},
	); err != nil {
		return fmt.Errorf("running automigration: %w", err)
	}

	// At most one active assignment per agent, at any observable instant.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_team_assignments_active_agent
		ON team_assignments (agent_id)
		WHERE is_active`).Error; err != nil {
		return fmt.Errorf("creating active-assignment index: %w", err)
	}

	// At most one root viewing per (lead, property); follow-ups are exempt.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_viewings_root_lead_property
		ON viewings (lead_id, property_id)
		WHERE parent_viewing_id IS NULL`).Error; err != nil {
		return fmt.Errorf("creating root-viewing index: %w", err)
	}

	return nil
}
