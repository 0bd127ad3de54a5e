package service

import (
	"context"
	"sync"

	"comanda/internal/api"
	"comanda/internal/forms"
	"comanda/internal/model"
	"comanda/internal/notify"
)

type serviciosAPI interface {
	Listar(ctx context.Context, tok string) ([]model.Servicio, error)
	Registrar(ctx context.Context, tok string, req api.RegistrarServicio) (*model.Servicio, error)
	Actualizar(ctx context.Context, tok, id string, req api.RegistrarServicio) error
	Eliminar(ctx context.Context, tok, id string) error
}

// ServicioService backs the servicios screen. The tariff group invariants
// (max two lines, pairwise-distinct billing units) are enforced here before
// submission and re-validated server-side.
type ServicioService struct {
	api     serviciosAPI
	notices *notify.Center

	mu    sync.Mutex
	cache []model.Servicio
}

func NewServicioService(servicios serviciosAPI, notices *notify.Center) *ServicioService {
	return &ServicioService{api: servicios, notices: notices}
}

func (s *ServicioService) Listar(ctx context.Context, tok string) ([]model.Servicio, error) {
	servicios, err := s.api.Listar(ctx, tok)
	if err != nil {
		s.notices.Error("Error al cargar los servicios")
		return nil, err
	}
	s.mu.Lock()
	s.cache = servicios
	s.mu.Unlock()

	out := make([]model.Servicio, len(servicios))
	copy(out, servicios)
	return out, nil
}

// Servicios returns the mirrored list without a network round trip.
func (s *ServicioService) Servicios() []model.Servicio {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Servicio, len(s.cache))
	copy(out, s.cache)
	return out
}

// payload validates the tariff group and builds the submission body. The
// named group errors (maxTwoTarifas, differentUnidadFacturacion) pass through
// untouched so the UI can show the specific message.
func payload(nombre, descripcion string, tarifas *forms.Group[forms.TarifaLinea]) (api.RegistrarServicio, error) {
	if err := tarifas.Validate(); err != nil {
		return api.RegistrarServicio{}, err
	}
	lineas := make([]api.TarifaLinea, 0, tarifas.Len())
	for _, t := range tarifas.Lines() {
		lineas = append(lineas, api.TarifaLinea{
			PrecioBase:        t.PrecioBase,
			UnidadFacturacion: t.UnidadFacturacion,
		})
	}
	return api.RegistrarServicio{Nombre: nombre, Descripcion: descripcion, Tarifas: lineas}, nil
}

func (s *ServicioService) Registrar(ctx context.Context, tok, nombre, descripcion string, tarifas *forms.Group[forms.TarifaLinea]) error {
	req, err := payload(nombre, descripcion, tarifas)
	if err != nil {
		return err
	}
	if _, err := s.api.Registrar(ctx, tok, req); err != nil {
		s.notices.Error("Error al registrar el servicio")
		return err
	}
	s.notices.Info("Servicio registrado exitosamente")
	_, err = s.Listar(ctx, tok)
	return err
}

func (s *ServicioService) Actualizar(ctx context.Context, tok, id, nombre, descripcion string, tarifas *forms.Group[forms.TarifaLinea]) error {
	req, err := payload(nombre, descripcion, tarifas)
	if err != nil {
		return err
	}
	if err := s.api.Actualizar(ctx, tok, id, req); err != nil {
		s.notices.Error("Error al actualizar el servicio")
		return err
	}
	s.notices.Info("Servicio actualizado exitosamente")
	_, err = s.Listar(ctx, tok)
	return err
}

func (s *ServicioService) Eliminar(ctx context.Context, tok, id string) error {
	if err := s.api.Eliminar(ctx, tok, id); err != nil {
		s.notices.Error("Error al eliminar el servicio")
		return err
	}
	s.notices.Info("Servicio eliminado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}
