package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema crea las tablas si no existen. accounts guarda la identidad común;
// el resto son extensiones 1:1 por tipo de cuenta.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id                UUID PRIMARY KEY,
		username          TEXT UNIQUE,
		password          TEXT,
		first_name        TEXT NOT NULL,
		last_name         TEXT NOT NULL,
		kind              TEXT NOT NULL CHECK (kind IN ('company', 'user', 'manager')),
		registration_date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS companies (
		id           UUID PRIMARY KEY REFERENCES accounts(id),
		name         TEXT NOT NULL,
		greeting     TEXT,
		farewell     TEXT,
		birth_date   DATE NOT NULL,
		phone_number TEXT NOT NULL,
		country      TEXT NOT NULL,
		city         TEXT NOT NULL,
		plan_id      TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_companies_lower_name ON companies (lower(name))`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY REFERENCES accounts(id),
		document_type TEXT NOT NULL,
		document_id   TEXT NOT NULL,
		birth_date    DATE,
		phone_number  TEXT NOT NULL DEFAULT '',
		importance    INT NOT NULL DEFAULT 1 CHECK (importance BETWEEN 1 AND 10),
		allow_call    BOOLEAN NOT NULL DEFAULT false,
		allow_sms     BOOLEAN NOT NULL DEFAULT false,
		allow_email   BOOLEAN NOT NULL DEFAULT false,
		UNIQUE (document_type, document_id)
	)`,
	`CREATE TABLE IF NOT EXISTS managers (
		id UUID PRIMARY KEY REFERENCES accounts(id)
	)`,
	`CREATE TABLE IF NOT EXISTS company_user (
		seq           BIGSERIAL,
		company_id    UUID NOT NULL REFERENCES companies(id),
		user_id       UUID NOT NULL REFERENCES users(id),
		document_type TEXT NOT NULL,
		document_id   TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (company_id, user_id, document_type, document_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_company_user_document ON company_user (document_type, document_id)`,
	`CREATE INDEX IF NOT EXISTS idx_company_user_user ON company_user (user_id, seq)`,
}

// EnsureSchema aplica el esquema de forma idempotente.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
