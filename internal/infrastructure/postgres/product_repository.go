package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// products.category_id es NOT NULL con FK a categories: el almacén también
// garantiza que ningún producto quede sin categoría.
type ProductRepo struct {
	db querier
}

// NewProductRepository construye el adaptador; acepta el pool o una transacción.
func NewProductRepository(db querier) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nuevo producto. ErrDuplicate si el SKU colisiona.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, sku, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.SKU, product.Name, product.Description,
		product.Price, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, category_id, sku, name, description, price, created_at, updated_at
		FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `
		SELECT id, category_id, sku, name, description, price, created_at, updated_at
		FROM products WHERE sku = $1`
	return r.scanOne(query, sku)
}

// List lista productos con paginación y devuelve el total.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, int, error) {
	var total int
	if err := r.db.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	query := `
		SELECT id, category_id, sku, name, description, price, created_at, updated_at
		FROM products ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list, err := scanProducts(rows)
	return list, total, err
}

// ListByCategory devuelve todos los productos que referencian la categoría.
func (r *ProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	query := `
		SELECT id, category_id, sku, name, description, price, created_at, updated_at
		FROM products WHERE category_id = $1 ORDER BY name ASC`
	rows, err := r.db.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Update actualiza un producto. ErrDuplicate si el SKU colisiona.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, sku = $3, name = $4, description = $5, price = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.SKU, product.Name, product.Description,
		product.Price, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SaveAll persiste en bloque la reasignación de categoría usando un batch de
// pgx: una ida y vuelta al servidor para los N productos.
func (r *ProductRepo) SaveAll(products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(
			`UPDATE products SET category_id = $2, updated_at = $3 WHERE id = $1`,
			p.ID, p.CategoryID, p.UpdatedAt,
		)
	}
	results := r.db.SendBatch(context.Background(), batch)
	defer results.Close()
	for range products {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("save products batch: %w", err)
		}
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(query string, arg interface{}) (*entity.Product, error) {
	var p entity.Product
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.CategoryID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
