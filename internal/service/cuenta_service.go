package service

import (
	"context"
	"errors"
	"sync"

	"comanda/internal/api"
	"comanda/internal/model"
	"comanda/internal/notify"

	"github.com/rs/zerolog/log"
)

// Validation failures raised before any network call.
var (
	ErrTitularRequerido    = errors.New("el nombre del titular es obligatorio")
	ErrSinServicios        = errors.New("debe seleccionar al menos un servicio")
	ErrSinProductos        = errors.New("debe agregar al menos un producto")
	ErrCantidadInvalida    = errors.New("cada producto requiere una cantidad entera positiva")
	ErrDetalleNoDisponible = errors.New("no hay un detalle de pago abierto para esta cuenta")
)

type cuentasAPI interface {
	Listar(ctx context.Context, tok string) ([]model.Cuenta, error)
	Registrar(ctx context.Context, tok, nombreTitular string) (*model.Cuenta, error)
	Actualizar(ctx context.Context, tok, id, nombreTitular string) error
	Cancelar(ctx context.Context, tok, id string) error
	AddServicios(ctx context.Context, tok, id string, servicioIDs []string) error
	AddProductos(ctx context.Context, tok, id string, lineas []api.ProductoLinea) error
	PagarProductos(ctx context.Context, tok, id string) (*model.Desglose, error)
	PagarServicios(ctx context.Context, tok, id string) (*model.Desglose, error)
}

// CuentaService is the view-model behind the cuentas screen: the mirrored tab
// list, the attach sub-flows and the two-step settlement workflow. The list
// cache is read-mostly and replaced wholesale after every mutating call; no
// optimistic mutation is ever applied.
//
// Operations that target a single account (attach, settle) are serialized per
// account id. The source UI left overlapping requests racy; here a second
// operation on the same account simply waits for the first.
type CuentaService struct {
	api     cuentasAPI
	notices *notify.Center

	mu       sync.Mutex
	cache    []model.Cuenta
	detalles map[string]*model.DetallePago
	locks    map[string]*sync.Mutex
}

func NewCuentaService(cuentas cuentasAPI, notices *notify.Center) *CuentaService {
	return &CuentaService{
		api:      cuentas,
		notices:  notices,
		detalles: make(map[string]*model.DetallePago),
		locks:    make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing operations on one account.
func (s *CuentaService) lockFor(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[id]
	if !ok {
		m = &sync.Mutex{}
		s.locks[id] = m
	}
	return m
}

// refresh replaces the mirrored list with the remote truth.
func (s *CuentaService) refresh(ctx context.Context, tok string) error {
	cuentas, err := s.api.Listar(ctx, tok)
	if err != nil {
		s.notices.Error(api.Message(err))
		return err
	}
	s.mu.Lock()
	s.cache = cuentas
	s.mu.Unlock()
	return nil
}

// Listar refreshes and returns the account list.
func (s *CuentaService) Listar(ctx context.Context, tok string) ([]model.Cuenta, error) {
	if err := s.refresh(ctx, tok); err != nil {
		return nil, err
	}
	return s.Cuentas(), nil
}

// Cuentas returns the mirrored list without a network round trip.
func (s *CuentaService) Cuentas() []model.Cuenta {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Cuenta, len(s.cache))
	copy(out, s.cache)
	return out
}

// Registrar opens a new tab for the given holder.
func (s *CuentaService) Registrar(ctx context.Context, tok, nombreTitular string) error {
	if nombreTitular == "" {
		return ErrTitularRequerido
	}
	if _, err := s.api.Registrar(ctx, tok, nombreTitular); err != nil {
		s.notices.Error("Error al registrar la cuenta")
		return err
	}
	s.notices.Info("Cuenta registrada exitosamente")
	return s.refresh(ctx, tok)
}

// Actualizar renames the holder. Edit mode pre-fills the name only; every
// other field is immutable through this path.
func (s *CuentaService) Actualizar(ctx context.Context, tok, id, nombreTitular string) error {
	if nombreTitular == "" {
		return ErrTitularRequerido
	}
	if err := s.api.Actualizar(ctx, tok, id, nombreTitular); err != nil {
		s.notices.Error("Error al actualizar la cuenta")
		return err
	}
	s.notices.Info("Cuenta actualizada exitosamente")
	return s.refresh(ctx, tok)
}

// Cancelar soft-deletes the tab.
func (s *CuentaService) Cancelar(ctx context.Context, tok, id string) error {
	if err := s.api.Cancelar(ctx, tok, id); err != nil {
		s.notices.Error("Error al cancelar la cuenta")
		return err
	}
	s.notices.Info("Cuenta cancelada exitosamente")
	return s.refresh(ctx, tok)
}

// AddServicios attaches the selected services to one account.
func (s *CuentaService) AddServicios(ctx context.Context, tok, id string, servicioIDs []string) error {
	if len(servicioIDs) == 0 {
		return ErrSinServicios
	}

	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	if err := s.api.AddServicios(ctx, tok, id, servicioIDs); err != nil {
		s.notices.Error("Error al añadir los servicios a la cuenta")
		return err
	}
	s.notices.Info("Servicios añadidos exitosamente a la cuenta")
	return s.refresh(ctx, tok)
}

// AddProductos attaches product lines to one account. Quantities must be
// positive integers — checked here, before any network call. Duplicate SKUs
// are forwarded untouched; deduplication is the server's call.
func (s *CuentaService) AddProductos(ctx context.Context, tok, id string, lineas []api.ProductoLinea) error {
	if len(lineas) == 0 {
		return ErrSinProductos
	}
	for _, l := range lineas {
		if l.SKU == "" || l.Cantidad < 1 {
			return ErrCantidadInvalida
		}
	}

	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	if err := s.api.AddProductos(ctx, tok, id, lineas); err != nil {
		s.notices.Error("Error al añadir los productos a la cuenta")
		return err
	}
	s.notices.Info("Productos añadidos exitosamente a la cuenta")
	return s.refresh(ctx, tok)
}

// Pagar runs the two-step settlement: first the product charge breakdown,
// then — only if that succeeded — the service charge breakdown. The merged
// detail is revealed only when both steps succeed; a step-2 failure discards
// the already-fetched product breakdown. The detail is held until
// CerrarDetalle and the account list is not reloaded on failure.
func (s *CuentaService) Pagar(ctx context.Context, tok, id string) (*model.DetallePago, error) {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	productos, err := s.api.PagarProductos(ctx, tok, id)
	if err != nil {
		s.notices.Error("Error al pagar los productos")
		return nil, err
	}

	servicios, err := s.api.PagarServicios(ctx, tok, id)
	if err != nil {
		// Step 1 may already have had a remote effect; there is no
		// compensating endpoint, so flag the account for reconciliation.
		log.Warn().Str("cuenta", id).
			Msg("settlement step 2 failed after step 1 succeeded — remote state may need reconciliation")
		s.notices.Error("Error al pagar los servicios")
		return nil, err
	}

	detalle := &model.DetallePago{
		Cuenta:    id,
		Titular:   s.titularDe(id),
		Productos: *productos,
		Servicios: *servicios,
	}

	s.mu.Lock()
	s.detalles[id] = detalle
	s.mu.Unlock()
	return detalle, nil
}

// Detalle returns the open receipt for an account, when one exists.
func (s *CuentaService) Detalle(id string) (*model.DetallePago, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.detalles[id]
	return d, ok
}

// CerrarDetalle discards the ephemeral receipt and reloads the list —
// settlement typically changes account state server-side.
func (s *CuentaService) CerrarDetalle(ctx context.Context, tok, id string) error {
	s.mu.Lock()
	delete(s.detalles, id)
	s.mu.Unlock()
	return s.refresh(ctx, tok)
}

func (s *CuentaService) titularDe(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cache {
		if c.ID == id {
			return c.Titular
		}
	}
	return ""
}
