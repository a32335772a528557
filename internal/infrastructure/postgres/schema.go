package postgres

import (
	"context"
	"fmt"
)

// Cada agregado se guarda como documento JSONB; las columnas aparte sólo existen para
// índices y filtros.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS organisations (
		id         TEXT PRIMARY KEY,
		doc        JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_organisations_name ON organisations ((doc->>'organisationName'))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_organisations_org_id ON organisations ((doc->>'organisationId'))`,

	`CREATE TABLE IF NOT EXISTS companies (
		id           TEXT PRIMARY KEY,
		organisation TEXT NOT NULL,
		created_by   TEXT NOT NULL,
		is_active    BOOLEAN NOT NULL,
		doc          JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_companies_owner ON companies (organisation, created_by) WHERE is_active`,
	`CREATE INDEX IF NOT EXISTS idx_companies_creator ON companies (created_by) WHERE is_active`,

	`CREATE TABLE IF NOT EXISTS users (
		id  TEXT PRIMARY KEY,
		doc JSONB NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS templates (
		id           TEXT PRIMARY KEY,
		organisation TEXT NOT NULL,
		department   TEXT NOT NULL,
		is_active    BOOLEAN NOT NULL,
		doc          JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_templates_org ON templates (organisation, department) WHERE is_active`,

	`CREATE TABLE IF NOT EXISTS offers (
		id           TEXT PRIMARY KEY,
		organisation TEXT NOT NULL,
		created_by   TEXT NOT NULL,
		status       TEXT NOT NULL,
		total_ctc    NUMERIC(14,2) NOT NULL DEFAULT 0,
		doc          JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_offers_org_created ON offers (organisation, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_offers_org_creator_status ON offers (organisation, created_by, status)`,
}

// EnsureSchema crea tablas e índices si no existen. Es idempotente.
func EnsureSchema(ctx context.Context, db DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}
