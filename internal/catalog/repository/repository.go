// Package repository provides PostgreSQL access to the product catalog.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo implements Repository backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListActiveByType returns active products of the given canonical type,
// ordered by premium so downstream filtering keeps a stable presentation
// order.
func (r *Repo) ListActiveByType(ctx context.Context, productType string) ([]Product, error) {
	query := `
		SELECT product_id, product_name, product_type, description,
		       premium_amount, coverage_amount, min_age, max_age,
		       target_gender, features
		FROM insurance_products
		WHERE product_type = $1 AND is_active = TRUE
		ORDER BY premium_amount ASC, product_id ASC`

	rows, err := r.pool.Query(ctx, query, productType)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct reads one catalog row. The catalog is maintained by an
// external team, so description and features are nullable and must not
// fail the scan.
func scanProduct(row rowScanner) (Product, error) {
	var p Product
	var description *string
	var features []byte
	err := row.Scan(
		&p.ProductID, &p.ProductName, &p.ProductType, &description,
		&p.PremiumAmount, &p.CoverageAmount, &p.MinAge, &p.MaxAge,
		&p.TargetGender, &features,
	)
	if err != nil {
		return Product{}, err
	}
	if description != nil {
		p.Description = *description
	}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &p.Features); err != nil {
			return Product{}, fmt.Errorf("decode product features: %w", err)
		}
	}
	return p, nil
}
