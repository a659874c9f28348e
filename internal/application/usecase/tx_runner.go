package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de la base de datos, con los
// repositorios atados a ella. Si fn devuelve error se hace rollback; si no, commit.
// Las mutaciones de varios pasos (cargar, validar, escribir) pasan por aquí para
// ser todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		categories repository.CategoryRepository,
	) error) error
}
