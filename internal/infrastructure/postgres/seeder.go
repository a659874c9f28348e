package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

type seedCategory struct {
	name        string
	description string
	products    []seedProduct
}

type seedProduct struct {
	name  string
	price string
	stock int
}

// seedData datos de ejemplo para ambiente de desarrollo.
var seedData = []seedCategory{
	{
		name: "Electronica", description: "Dispositivos electronicos",
		products: []seedProduct{
			{"Laptop Pro 15", "1299.99", 25},
			{"Monitor 4K 27\"", "449.99", 40},
			{"Teclado Mecanico", "89.99", 100},
			{"Mouse Ergonomico", "59.99", 150},
		},
	},
	{
		name: "Hogar", description: "Articulos para el hogar",
		products: []seedProduct{
			{"Aspiradora Robot", "399.99", 15},
			{"Cafetera Express", "199.99", 30},
			{"Lampara LED Inteligente", "34.99", 200},
		},
	},
	{
		name: "Deportes", description: "Equipamiento deportivo",
		products: []seedProduct{
			{"Bicicleta Montana", "599.99", 8},
			{"Pesas Ajustables", "149.99", 45},
			{"Banda de Resistencia Set", "24.99", 5},
		},
	},
}

// Seed carga los datos de ejemplo si la tabla de categorías está vacía.
// Pensado para ambiente de desarrollo; con datos existentes no hace nada.
// Toda la carga corre en una sola transacción.
func Seed(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM categorias`).Scan(&count); err != nil {
		return fmt.Errorf("contar categorías: %w", err)
	}
	if count > 0 {
		log.Info().Msg("datos ya existentes, saltando seed")
		return nil
	}

	log.Info().Msg("cargando datos de ejemplo...")

	runner := NewTxRunner(pool)
	err := runner.Run(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		now := time.Now()
		for _, sc := range seedData {
			category := &entity.Category{
				ID:          uuid.New().String(),
				Name:        sc.name,
				Description: sc.description,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := categories.Create(ctx, category); err != nil {
				return err
			}
			for _, sp := range sc.products {
				product := &entity.Product{
					ID:         uuid.New().String(),
					Name:       sp.name,
					Price:      decimal.RequireFromString(sp.price),
					Stock:      sp.stock,
					Active:     true,
					CategoryID: category.ID,
					CreatedAt:  now,
					UpdatedAt:  now,
				}
				if err := products.Create(ctx, product); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Info().Msg("datos de ejemplo cargados exitosamente")
	return nil
}
