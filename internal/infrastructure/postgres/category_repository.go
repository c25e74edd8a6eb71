package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
// La tabla categories tiene un índice único sobre LOWER(name): el constraint
// es el punto real de enforcement de la unicidad de nombres.
type CategoryRepo struct {
	db querier
}

// NewCategoryRepository construye el adaptador; acepta el pool o una transacción.
func NewCategoryRepository(db querier) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create persiste una nueva categoría. ErrDuplicate si el nombre colisiona
// con el índice único (carrera con el chequeo previo del caso de uso).
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, image_name, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.ImageName,
		category.CreatedBy, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, name, description, image_name, created_by, created_at, updated_at
		FROM categories WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByName obtiene una categoría por nombre, sin distinguir mayúsculas.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `
		SELECT id, name, description, image_name, created_by, created_at, updated_at
		FROM categories WHERE LOWER(name) = LOWER($1)`
	return r.scanOne(query, name)
}

// ExistsByName indica si ya hay una categoría con ese nombre (sin distinguir mayúsculas).
func (r *CategoryRepo) ExistsByName(name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM categories WHERE LOWER(name) = LOWER($1))`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists category by name: %w", err)
	}
	return exists, nil
}

// Search aplica el filtro componible y devuelve la página más el total.
// Orden determinista por nombre ascendente.
func (r *CategoryRepo) Search(filter repository.CategoryFilter, limit, offset int) ([]*entity.Category, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.CreatedBy != "" {
		args = append(args, filter.CreatedBy)
		conditions = append(conditions, fmt.Sprintf("created_by = $%d", len(args)))
	}
	if filter.CreatedAfter != nil {
		args = append(args, *filter.CreatedAfter)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.CreatedBefore != nil {
		args = append(args, *filter.CreatedBefore)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM categories WHERE ` + where
	if err := r.db.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	args = append(args, limit, offset)
	pageQuery := fmt.Sprintf(`
		SELECT id, name, description, image_name, created_by, created_at, updated_at
		FROM categories WHERE %s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))
	rows, err := r.db.Query(context.Background(), pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageName, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// Update actualiza una categoría. ErrDuplicate si el rename colisiona con el índice único.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, image_name = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.ImageName, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) scanOne(query string, arg interface{}) (*entity.Category, error) {
	var c entity.Category
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Description, &c.ImageName, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}
