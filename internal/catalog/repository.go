package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("not found")

const defaultListLimit = 50

// DBPool matches the methods from *pgxpool.Pool that we use.
// This allows us to mock the database in tests.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Filter narrows ListServices: substring search over title/description,
// equality on category, and a row cap.
type Filter struct {
	Query      string
	CategoryID string
	Limit      int
}

type Repository interface {
	ListServices(ctx context.Context, f Filter) ([]Service, error)
	GetService(ctx context.Context, id string) (Service, error)
	ListCategories(ctx context.Context) ([]Category, error)
	GetSettings(ctx context.Context) (Settings, error)
}

type PostgresRepository struct {
	pool DBPool
}

func NewPostgresRepository(pool DBPool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) ListServices(ctx context.Context, f Filter) ([]Service, error) {
	var (
		conds []string
		args  []any
	)

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}

	limit := f.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	args = append(args, limit)

	query := `SELECT id, COALESCE(category_id::text, ''), title, COALESCE(description, ''), price, COALESCE(image_url, ''), created_at FROM services`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select services: %w", err)
	}
	defer rows.Close()

	services := []Service{}
	for rows.Next() {
		var s Service
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Title, &s.Description, &s.Price, &s.ImageURL, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return services, nil
}

func (r *PostgresRepository) GetService(ctx context.Context, id string) (Service, error) {
	var s Service
	row := r.pool.QueryRow(ctx,
		`SELECT id, COALESCE(category_id::text, ''), title, COALESCE(description, ''), price, COALESCE(image_url, ''), created_at
         FROM services WHERE id = $1`, id)
	if err := row.Scan(&s.ID, &s.CategoryID, &s.Title, &s.Description, &s.Price, &s.ImageURL, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Service{}, ErrNotFound
		}
		return Service{}, fmt.Errorf("select service: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return categories, nil
}

func (r *PostgresRepository) GetSettings(ctx context.Context) (Settings, error) {
	var s Settings
	row := r.pool.QueryRow(ctx,
		`SELECT store_name, whatsapp_number, currency_suffix, shipping_fee FROM store_settings LIMIT 1`)
	if err := row.Scan(&s.StoreName, &s.WhatsAppNumber, &s.CurrencySuffix, &s.ShippingFee); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Settings{}, ErrNotFound
		}
		return Settings{}, fmt.Errorf("select store settings: %w", err)
	}
	return s, nil
}
