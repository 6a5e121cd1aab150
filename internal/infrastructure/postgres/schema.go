package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap del esquema: crea las tablas si no existen. No es un sistema de
// migraciones; cambios de esquema posteriores se aplican por fuera.
//
// La unicidad de nombres es case-insensitive sobre el nombre recortado, igual
// que la validación de la capa de aplicación. El FK de products es RESTRICT:
// una categoría referenciada no puede borrarse ni siquiera en una carrera que
// esquive la validación previa.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	username      VARCHAR(250) NOT NULL UNIQUE,
	email         VARCHAR(250) NOT NULL,
	password_hash TEXT NOT NULL,
	first_name    VARCHAR(250) NOT NULL DEFAULT '',
	last_name     VARCHAR(250) NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
	id      BIGSERIAL PRIMARY KEY,
	name    VARCHAR(250) NOT NULL,
	version TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS categories_name_unique
	ON categories (lower(btrim(name)));

CREATE TABLE IF NOT EXISTS products (
	id          BIGSERIAL PRIMARY KEY,
	name        VARCHAR(250) NOT NULL,
	description VARCHAR(250) NOT NULL,
	image_ref   TEXT NOT NULL,
	category_id BIGINT NOT NULL REFERENCES categories (id) ON DELETE RESTRICT,
	version     TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS products_name_unique
	ON products (lower(btrim(name)));

CREATE INDEX IF NOT EXISTS products_category_id_idx
	ON products (category_id);
`

// EnsureSchema aplica el bootstrap sobre el pool.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
