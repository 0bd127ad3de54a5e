package service

import (
	"context"
	"sync"

	"comanda/internal/api"
	"comanda/internal/forms"
	"comanda/internal/model"
	"comanda/internal/notify"

	"github.com/shopspring/decimal"
)

type productosAPI interface {
	Listar(ctx context.Context, tok string) ([]model.Producto, error)
	ListarPreparados(ctx context.Context, tok string) ([]model.ProductoPreparado, error)
	Registrar(ctx context.Context, tok string, req api.RegistrarProducto) (*model.Producto, error)
	RegistrarPreparado(ctx context.Context, tok string, req api.RegistrarPreparado) (*model.ProductoPreparado, error)
	Actualizar(ctx context.Context, tok, id string, campos map[string]interface{}) error
	AddStock(ctx context.Context, tok, id string, delta int) error
	CambiarEstado(ctx context.Context, tok, id, estado string) error
	Eliminar(ctx context.Context, tok, id string) error
}

// ProductoService backs the productos screen: simple and prepared product
// lists plus their mutations. Both caches are replaced wholesale on refresh.
type ProductoService struct {
	api     productosAPI
	notices *notify.Center

	mu         sync.Mutex
	productos  []model.Producto
	preparados []model.ProductoPreparado
}

func NewProductoService(productos productosAPI, notices *notify.Center) *ProductoService {
	return &ProductoService{api: productos, notices: notices}
}

func (s *ProductoService) Listar(ctx context.Context, tok string) ([]model.Producto, error) {
	productos, err := s.api.Listar(ctx, tok)
	if err != nil {
		s.notices.Error("Error al cargar los productos")
		return nil, err
	}
	s.mu.Lock()
	s.productos = productos
	s.mu.Unlock()

	out := make([]model.Producto, len(productos))
	copy(out, productos)
	return out, nil
}

func (s *ProductoService) ListarPreparados(ctx context.Context, tok string) ([]model.ProductoPreparado, error) {
	preparados, err := s.api.ListarPreparados(ctx, tok)
	if err != nil {
		s.notices.Error("Error al cargar los productos preparados")
		return nil, err
	}
	s.mu.Lock()
	s.preparados = preparados
	s.mu.Unlock()

	out := make([]model.ProductoPreparado, len(preparados))
	copy(out, preparados)
	return out, nil
}

// Activos filters the mirrored simple-product list to ACTIVO entries — the
// set offered in the cuentas attach form.
func (s *ProductoService) Activos() []model.Producto {
	s.mu.Lock()
	defer s.mu.Unlock()
	var activos []model.Producto
	for _, p := range s.productos {
		if p.Estado == model.EstadoActivo {
			activos = append(activos, p)
		}
	}
	return activos
}

func (s *ProductoService) Registrar(ctx context.Context, tok string, req api.RegistrarProducto) error {
	if _, err := s.api.Registrar(ctx, tok, req); err != nil {
		s.notices.Error("Error al registrar el producto")
		return err
	}
	s.notices.Info("Producto registrado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}

// RegistrarPreparado creates a recipe-based product. The recipe group is
// validated (positive quantity, ingredient selected per line) before any
// network call.
func (s *ProductoService) RegistrarPreparado(ctx context.Context, tok, nombre, descripcion, sku string, precio decimal.Decimal, receta *forms.Group[forms.RecetaLinea]) error {
	if err := receta.Validate(); err != nil {
		return err
	}

	lineas := make([]api.RecetaLinea, 0, receta.Len())
	for _, l := range receta.Lines() {
		lineas = append(lineas, api.RecetaLinea{Cantidad: l.Cantidad, Ingrediente: l.IngredienteID})
	}

	req := api.RegistrarPreparado{
		Nombre:      nombre,
		Descripcion: descripcion,
		SKU:         sku,
		Precio:      precio,
		Receta:      lineas,
	}
	if _, err := s.api.RegistrarPreparado(ctx, tok, req); err != nil {
		s.notices.Error("Error al registrar el producto preparado")
		return err
	}
	s.notices.Info("Producto preparado registrado exitosamente")
	_, err := s.ListarPreparados(ctx, tok)
	return err
}

// Actualizar patches the given fields on a simple product.
func (s *ProductoService) Actualizar(ctx context.Context, tok, id string, campos map[string]interface{}) error {
	if err := s.api.Actualizar(ctx, tok, id, campos); err != nil {
		s.notices.Error("Error al actualizar el producto")
		return err
	}
	s.notices.Info("Producto actualizado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}

// AddStock validates the stock-delta form and forwards the monotonic
// increment. Deltas ≤ 0 never reach the network.
func (s *ProductoService) AddStock(ctx context.Context, tok, id string, delta int) error {
	if err := forms.ValidarStockDelta(forms.StockDelta{Cantidad: delta}); err != nil {
		return err
	}
	if err := s.api.AddStock(ctx, tok, id, delta); err != nil {
		s.notices.Error("Error al agregar stock")
		return err
	}
	s.notices.Info("Stock agregado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}

// CambiarEstado toggles the ACTIVO/INACTIVO flag.
func (s *ProductoService) CambiarEstado(ctx context.Context, tok, id, estado string) error {
	if err := s.api.CambiarEstado(ctx, tok, id, estado); err != nil {
		s.notices.Error("Error al cambiar el estado del producto")
		return err
	}
	s.notices.Info("Estado del producto actualizado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}

// Eliminar soft-deletes the product.
func (s *ProductoService) Eliminar(ctx context.Context, tok, id string) error {
	if err := s.api.Eliminar(ctx, tok, id); err != nil {
		s.notices.Error("Error al eliminar el producto")
		return err
	}
	s.notices.Info("Producto eliminado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}
