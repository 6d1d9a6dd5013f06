package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/consultingshop/checkout-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// catalogRepo reads the product catalog. The catalog is owned by another
// subsystem, this repo never writes to it.
type catalogRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewCatalogRepo(db *sqlx.DB) *catalogRepo {
	return &catalogRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *catalogRepo) ProductByID(ctx context.Context, id string) (entities.Product, error) {
	query, args := r.qb.Select("id", "title", "price_cents").
		From("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var product Product
	err := r.db.GetContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, fmt.Errorf("%w: %s", entities.ErrProductNotFound, id)
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}
