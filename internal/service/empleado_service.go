package service

import (
	"context"
	"sync"

	"comanda/internal/api"
	"comanda/internal/model"
	"comanda/internal/notify"
)

type empleadosAPI interface {
	Listar(ctx context.Context, tok string) ([]model.Empleado, error)
	Registrar(ctx context.Context, tok string, req api.RegistrarEmpleado) (*model.Empleado, error)
	Actualizar(ctx context.Context, tok, id string, campos map[string]interface{}) error
	Eliminar(ctx context.Context, tok, id string) error
}

// EmpleadoService backs the personal screen. Passwords travel only in the
// registration payload; the console never stores or echoes them.
type EmpleadoService struct {
	api     empleadosAPI
	notices *notify.Center

	mu    sync.Mutex
	cache []model.Empleado
}

func NewEmpleadoService(empleados empleadosAPI, notices *notify.Center) *EmpleadoService {
	return &EmpleadoService{api: empleados, notices: notices}
}

func (s *EmpleadoService) Listar(ctx context.Context, tok string) ([]model.Empleado, error) {
	empleados, err := s.api.Listar(ctx, tok)
	if err != nil {
		s.notices.Error("Error al cargar el personal")
		return nil, err
	}
	s.mu.Lock()
	s.cache = empleados
	s.mu.Unlock()

	out := make([]model.Empleado, len(empleados))
	copy(out, empleados)
	return out, nil
}

func (s *EmpleadoService) Registrar(ctx context.Context, tok string, req api.RegistrarEmpleado) error {
	if _, err := s.api.Registrar(ctx, tok, req); err != nil {
		s.notices.Error("Error al registrar el empleado")
		return err
	}
	s.notices.Info("Empleado registrado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}

func (s *EmpleadoService) Actualizar(ctx context.Context, tok, id string, campos map[string]interface{}) error {
	if err := s.api.Actualizar(ctx, tok, id, campos); err != nil {
		s.notices.Error("Error al actualizar el empleado")
		return err
	}
	s.notices.Info("Empleado actualizado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}

func (s *EmpleadoService) Eliminar(ctx context.Context, tok, id string) error {
	if err := s.api.Eliminar(ctx, tok, id); err != nil {
		s.notices.Error("Error al eliminar el empleado")
		return err
	}
	s.notices.Info("Empleado eliminado exitosamente")
	_, err := s.Listar(ctx, tok)
	return err
}
