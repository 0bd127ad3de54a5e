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

type ingredientesAPI interface {
	Listar(ctx context.Context, tok string) ([]model.Ingrediente, error)
	Registrar(ctx context.Context, tok string, req api.RegistrarIngrediente) (*model.Ingrediente, error)
	Actualizar(ctx context.Context, tok, id string, campos map[string]interface{}) error
	AddStock(ctx context.Context, tok, id string, delta decimal.Decimal) error
	CambiarEstado(ctx context.Context, tok, id, estado string) error
	Eliminar(ctx context.Context, tok, id string) error
}

// IngredienteService backs the ingredientes screen and the ingredient side of
// existencias.
type IngredienteService struct {
	api     ingredientesAPI
	notices *notify.Center

	mu    sync.Mutex
	cache []model.Ingrediente
}

func NewIngredienteService(ingredientes ingredientesAPI, notices *notify.Center) *IngredienteService {
	return &IngredienteService{api: ingredientes, notices: notices}
}

func (s *IngredienteService) Listar(ctx context.Context, tok string) ([]model.Ingrediente, error) {
	ingredientes, err := s.api.Listar(ctx, tok)
	if err != nil {
		s.notices.Error("Error al cargar los ingredientes")
		return nil, err
	}
	s.mu.Lock()
	s.cache = ingredientes
	s.mu.Unlock()

	out := make([]model.Ingrediente, len(ingredientes))
	copy(out, ingredientes)
	return out, nil
}

// Activos filters the mirrored list to ACTIVO entries — the set offered in
// the recipe form.
func (s *IngredienteService) Activos() []model.Ingrediente {
	s.mu.Lock()
	defer s.mu.Unlock()
	var activos []model.Ingrediente
	for _, i := range s.cache {
		if i.Estado == model.EstadoActivo {
			activos = append(activos, i)
		}
	}
	return activos
}

func (s *IngredienteService) Registrar(ctx context.Context, tok string, req api.RegistrarIngrediente) error {
	if _, err := s.api.Registrar(ctx, tok, req); err != nil {
		s.notices.Error("Error al registrar el ingrediente")
		return err
	}
	s.notices.Info("Ingrediente registrado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}

func (s *IngredienteService) Actualizar(ctx context.Context, tok, id string, campos map[string]interface{}) error {
	if err := s.api.Actualizar(ctx, tok, id, campos); err != nil {
		s.notices.Error("Error al actualizar el ingrediente")
		return err
	}
	s.notices.Info("Ingrediente actualizado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}

// AddStock validates the stock-delta form and forwards the additive patch
// (agregar_stock). The form field is an integer count even for weight and
// volume units, matching the existencias screen.
func (s *IngredienteService) AddStock(ctx context.Context, tok, id string, delta int) error {
	if err := forms.ValidarStockDelta(forms.StockDelta{Cantidad: delta}); err != nil {
		return err
	}
	if err := s.api.AddStock(ctx, tok, id, decimal.NewFromInt(int64(delta))); err != nil {
		s.notices.Error("Error al agregar stock")
		return err
	}
	s.notices.Info("Stock agregado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}

// CambiarEstado toggles the ACTIVO/INACTIVO flag.
func (s *IngredienteService) CambiarEstado(ctx context.Context, tok, id, estado string) error {
	if err := s.api.CambiarEstado(ctx, tok, id, estado); err != nil {
		s.notices.Error("Error al cambiar el estado del ingrediente")
		return err
	}
	s.notices.Info("Estado del ingrediente actualizado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}

func (s *IngredienteService) Eliminar(ctx context.Context, tok, id string) error {
	if err := s.api.Eliminar(ctx, tok, id); err != nil {
		s.notices.Error("Error al eliminar el ingrediente")
		return err
	}
	s.notices.Info("Ingrediente eliminado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}
