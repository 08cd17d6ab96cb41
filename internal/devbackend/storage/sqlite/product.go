package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/iudanet/paclead/internal/devbackend/storage"
)

// ListProducts returns products of the user ordered by ID
func (s *Storage) ListProducts(ctx context.Context, userID int64) ([]storage.Product, error) {
	query := `
		SELECT id, user_id, name, description, price, created_at, updated_at
		FROM products
		WHERE user_id = ?
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	products := make([]storage.Product, 0)
	for rows.Next() {
		var p storage.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// CreateProduct inserts product and sets ID and timestamps
func (s *Storage) CreateProduct(ctx context.Context, product *storage.Product) error {
	query := `
		INSERT INTO products (user_id, name, description, price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, query,
		product.UserID,
		product.Name,
		product.Description,
		product.Price,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get product id: %w", err)
	}

	product.ID = id
	product.CreatedAt = now
	product.UpdatedAt = now

	return nil
}

// UpdateProduct updates name, description and price
func (s *Storage) UpdateProduct(ctx context.Context, product *storage.Product) error {
	query := `
		UPDATE products
		SET name = ?, description = ?, price = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		now,
		product.ID,
		product.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if err := expectOneRow(result); err != nil {
		return err
	}

	// Возвращаем актуальную запись вместе с created_at
	err = s.db.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM products WHERE id = ?`, product.ID,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to reload product: %w", err)
	}

	return nil
}

// DeleteProduct deletes product of the user
func (s *Storage) DeleteProduct(ctx context.Context, userID, productID int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ? AND user_id = ?`, productID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return expectOneRow(result)
}

func expectOneRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrProductNotFound
	}

	return nil
}
