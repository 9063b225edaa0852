package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackperrotta/PerrottaBuildRoomPlanner/internal/server/models"
)

// ============================================================
// SQLite Repository
// ============================================================

// ErrNotFound возвращается, когда план с указанным id отсутствует.
var ErrNotFound = errors.New("plan not found")

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init запускает миграции.
func (r *Repository) Init(ctx context.Context, migrationsPath string) error {
	if err := r.runMigrations(migrationsPath); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Create сохраняет план вместе с исходным захватом комнаты.
func (r *Repository) Create(ctx context.Context, plan *models.Plan) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO plans (id, name, created_at, capture)
        VALUES (?, ?, ?, ?)
    `, plan.ID, plan.Name, plan.CreatedAt, plan.Capture)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*models.Plan, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, created_at, capture
        FROM plans
        WHERE id = ?
    `, id)

	var p models.Plan
	if err := row.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.Capture); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List возвращает метаданные всех планов, без захватов.
func (r *Repository) List(ctx context.Context) ([]models.Plan, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, created_at
        FROM plans
        ORDER BY created_at DESC, id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []models.Plan{}
	for rows.Next() {
		var p models.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ============================================================
// Migrations
// ============================================================

func (r *Repository) runMigrations(migrationsPath string) error {
	data, err := os.ReadFile(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	sqlText := string(data)
	_, err = r.db.Exec(sqlText)
	if err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
