package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/consultingshop/checkout-service/internal/entities"
)

type Catalog interface {
	ProductByID(ctx context.Context, id string) (entities.Product, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// CartItem is a client-submitted cart row. UnitPriceCents and Title are
// advisory: the pricer recomputes both from the catalog and honors the client
// values only behind the explicit fallback switch.
type CartItem struct {
	ProductID      string
	Quantity       int
	UnitPriceCents int64
	Title          string
}

type Quote struct {
	AmountCents int64
	Lines       []entities.LineItem
}

type pricerService struct {
	logger           *slog.Logger
	catalog          Catalog
	cache            Cache
	allowClientPrice bool
}

func NewPricerService(logger *slog.Logger, catalog Catalog, cache Cache, allowClientPrice bool) *pricerService {
	return &pricerService{
		logger:           logger.With(slog.String("service", "pricer")),
		catalog:          catalog,
		cache:            cache,
		allowClientPrice: allowClientPrice,
	}
}

// Price resolves cart rows to authoritative catalog prices and computes the
// order total. Pure read + compute, no side effects.
func (s *pricerService) Price(ctx context.Context, items []CartItem) (Quote, error) {
	if len(items) == 0 {
		return Quote{}, entities.ErrEmptyCart
	}

	var quote Quote
	quote.Lines = make([]entities.LineItem, 0, len(items))

	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}

		line := entities.LineItem{ProductID: item.ProductID, Quantity: qty}

		product, err := s.product(ctx, item.ProductID)
		switch {
		case err == nil:
			if product.PriceCents <= 0 {
				return Quote{}, fmt.Errorf("%w: product %s has price %d", entities.ErrInvalidPrice, product.ID, product.PriceCents)
			}
			line.Title = product.Title
			line.UnitPriceCents = product.PriceCents
		case errors.Is(err, entities.ErrProductNotFound) && s.allowClientPrice && item.UnitPriceCents > 0:
			s.logger.WarnContext(ctx, "using client-supplied price for unknown product",
				slog.String("product_id", item.ProductID),
				slog.Int64("unit_price_cents", item.UnitPriceCents))
			line.Title = item.Title
			line.UnitPriceCents = item.UnitPriceCents
		default:
			return Quote{}, err
		}

		line.TotalCents = line.UnitPriceCents * int64(qty)
		quote.AmountCents += line.TotalCents
		quote.Lines = append(quote.Lines, line)
	}

	return quote, nil
}

func (s *pricerService) product(ctx context.Context, id string) (entities.Product, error) {
	if data, ok := s.cache.Get(id); ok {
		var product entities.Product
		if err := product.Unmarshal(data); err == nil {
			return product, nil
		}
		s.logger.Warn("failed to unmarshal cached product", slog.String("product_id", id))
	}

	product, err := s.catalog.ProductByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}

	if data, err := product.Marshal(); err == nil {
		s.cache.Set(id, data)
	}
	return product, nil
}
