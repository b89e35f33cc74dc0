package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Puertos de solo lectura hacia los catálogos colaboradores. Su CRUD vive en
// otros sistemas; la recepción solo necesita verificar existencia y leer nombres.

// SupplierRepository acceso de lectura a proveedores.
type SupplierRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
}

// WarehouseRepository acceso de lectura a bodegas.
type WarehouseRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
}

// ProductRepository acceso de lectura al catálogo de productos.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}
