package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"comanda/internal/api"
	"comanda/internal/model"
	"comanda/internal/notify"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubCuentasAPI is an in-memory cuentas backend for testing. Every call is
// recorded in order so tests can assert sequencing.
type stubCuentasAPI struct {
	cuentas []model.Cuenta
	calls   []string

	listarErr         error
	pagarProductosErr error
	pagarServiciosErr error

	productosDesglose model.Desglose
	serviciosDesglose model.Desglose

	addedProductos [][]api.ProductoLinea
	renombres      map[string]string
}

func newStubCuentasAPI(cuentas ...model.Cuenta) *stubCuentasAPI {
	return &stubCuentasAPI{cuentas: cuentas, renombres: make(map[string]string)}
}

func (s *stubCuentasAPI) Listar(_ context.Context, _ string) ([]model.Cuenta, error) {
	s.calls = append(s.calls, "listar")
	if s.listarErr != nil {
		return nil, s.listarErr
	}
	out := make([]model.Cuenta, len(s.cuentas))
	copy(out, s.cuentas)
	return out, nil
}

func (s *stubCuentasAPI) Registrar(_ context.Context, _ string, nombreTitular string) (*model.Cuenta, error) {
	s.calls = append(s.calls, "registrar")
	c := model.Cuenta{ID: "c-nueva", Titular: nombreTitular, Estado: model.EstadoActivo}
	s.cuentas = append(s.cuentas, c)
	return &c, nil
}

func (s *stubCuentasAPI) Actualizar(_ context.Context, _ string, id, nombreTitular string) error {
	s.calls = append(s.calls, "actualizar")
	s.renombres[id] = nombreTitular
	for i := range s.cuentas {
		if s.cuentas[i].ID == id {
			s.cuentas[i].Titular = nombreTitular
		}
	}
	return nil
}

func (s *stubCuentasAPI) Cancelar(_ context.Context, _ string, id string) error {
	s.calls = append(s.calls, "cancelar")
	kept := s.cuentas[:0]
	for _, c := range s.cuentas {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.cuentas = kept
	return nil
}

func (s *stubCuentasAPI) AddServicios(_ context.Context, _ string, _ string, _ []string) error {
	s.calls = append(s.calls, "add-servicios")
	return nil
}

func (s *stubCuentasAPI) AddProductos(_ context.Context, _ string, _ string, lineas []api.ProductoLinea) error {
	s.calls = append(s.calls, "add-productos")
	s.addedProductos = append(s.addedProductos, lineas)
	return nil
}

func (s *stubCuentasAPI) PagarProductos(_ context.Context, _ string, _ string) (*model.Desglose, error) {
	s.calls = append(s.calls, "pagar-productos")
	if s.pagarProductosErr != nil {
		return nil, s.pagarProductosErr
	}
	d := s.productosDesglose
	return &d, nil
}

func (s *stubCuentasAPI) PagarServicios(_ context.Context, _ string, _ string) (*model.Desglose, error) {
	s.calls = append(s.calls, "pagar-servicios")
	if s.pagarServiciosErr != nil {
		return nil, s.pagarServiciosErr
	}
	d := s.serviciosDesglose
	return &d, nil
}

var _ cuentasAPI = (*stubCuentasAPI)(nil)

func newTestCuentaService(stub *stubCuentasAPI) *CuentaService {
	return NewCuentaService(stub, notify.NewCenter(3*time.Second))
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestRegistrarRequiereTitular(t *testing.T) {
	stub := newStubCuentasAPI()
	svc := newTestCuentaService(stub)

	err := svc.Registrar(context.Background(), "tok", "")

	assert.ErrorIs(t, err, ErrTitularRequerido)
	assert.Empty(t, stub.calls, "validation must fail before any network call")
}

func TestRegistrarRefrescaListado(t *testing.T) {
	stub := newStubCuentasAPI()
	svc := newTestCuentaService(stub)

	require.NoError(t, svc.Registrar(context.Background(), "tok", "Ana"))

	assert.Equal(t, []string{"registrar", "listar"}, stub.calls)
	cuentas := svc.Cuentas()
	require.Len(t, cuentas, 1)
	assert.Equal(t, "Ana", cuentas[0].Titular)
}

func TestActualizarRenombraTitular(t *testing.T) {
	stub := newStubCuentasAPI(model.Cuenta{ID: "c1", Titular: "Ana", Estado: model.EstadoActivo})
	svc := newTestCuentaService(stub)
	_, err := svc.Listar(context.Background(), "tok")
	require.NoError(t, err)

	require.NoError(t, svc.Actualizar(context.Background(), "tok", "c1", "Ana Maria"))

	assert.Equal(t, "Ana Maria", stub.renombres["c1"])
	cuentas := svc.Cuentas()
	require.Len(t, cuentas, 1)
	assert.Equal(t, "Ana Maria", cuentas[0].Titular, "rename must survive the reload round trip")
}

func TestActualizarRequiereTitular(t *testing.T) {
	stub := newStubCuentasAPI(model.Cuenta{ID: "c1", Titular: "Ana"})
	svc := newTestCuentaService(stub)

	err := svc.Actualizar(context.Background(), "tok", "c1", "")

	assert.ErrorIs(t, err, ErrTitularRequerido)
	assert.Empty(t, stub.calls)
}

func TestAddProductosValidaAntesDeRed(t *testing.T) {
	stub := newStubCuentasAPI()
	svc := newTestCuentaService(stub)
	ctx := context.Background()

	assert.ErrorIs(t, svc.AddProductos(ctx, "tok", "c1", nil), ErrSinProductos)
	assert.ErrorIs(t, svc.AddProductos(ctx, "tok", "c1", []api.ProductoLinea{
		{SKU: "SKU-1", Cantidad: 0},
	}), ErrCantidadInvalida)
	assert.ErrorIs(t, svc.AddProductos(ctx, "tok", "c1", []api.ProductoLinea{
		{SKU: "", Cantidad: 2},
	}), ErrCantidadInvalida)
	assert.Empty(t, stub.calls)
}

func TestAddProductosReenviaDuplicadosTalCual(t *testing.T) {
	stub := newStubCuentasAPI()
	svc := newTestCuentaService(stub)

	lineas := []api.ProductoLinea{
		{SKU: "SKU-1", Cantidad: 2},
		{SKU: "SKU-2", Cantidad: 1},
		{SKU: "SKU-1", Cantidad: 3},
	}
	require.NoError(t, svc.AddProductos(context.Background(), "tok", "c1", lineas))

	require.Len(t, stub.addedProductos, 1)
	assert.Equal(t, lineas, stub.addedProductos[0], "duplicate SKUs must be forwarded untouched")
}

func TestAddServiciosRequiereSeleccion(t *testing.T) {
	stub := newStubCuentasAPI()
	svc := newTestCuentaService(stub)

	assert.ErrorIs(t, svc.AddServicios(context.Background(), "tok", "c1", nil), ErrSinServicios)
	assert.Empty(t, stub.calls)
}

func TestPagarMezclaAmbosDesgloses(t *testing.T) {
	stub := newStubCuentasAPI(model.Cuenta{ID: "c1", Titular: "Ana", Estado: model.EstadoActivo})
	stub.productosDesglose = model.Desglose{
		Items: []model.Cargo{{Concepto: "Cerveza", Cantidad: 2, Subtotal: decimal.NewFromInt(90)}},
		Total: decimal.NewFromInt(90),
	}
	stub.serviciosDesglose = model.Desglose{
		Items: []model.Cargo{{Concepto: "Mesa de billar", Cantidad: 1, Subtotal: decimal.NewFromInt(120)}},
		Total: decimal.NewFromInt(120),
	}
	svc := newTestCuentaService(stub)
	_, err := svc.Listar(context.Background(), "tok")
	require.NoError(t, err)

	detalle, err := svc.Pagar(context.Background(), "tok", "c1")

	require.NoError(t, err)
	assert.Equal(t, []string{"listar", "pagar-productos", "pagar-servicios"}, stub.calls,
		"services must be charged only after products succeeded")
	assert.Equal(t, "c1", detalle.Cuenta)
	assert.Equal(t, "Ana", detalle.Titular)
	assert.True(t, detalle.Total().Equal(decimal.NewFromInt(210)))

	guardado, ok := svc.Detalle("c1")
	require.True(t, ok)
	assert.Equal(t, detalle, guardado)
}

func TestPagarFallaEnProductosNoTocaServicios(t *testing.T) {
	stub := newStubCuentasAPI()
	stub.pagarProductosErr = errors.New("boom")
	svc := newTestCuentaService(stub)

	detalle, err := svc.Pagar(context.Background(), "tok", "c1")

	require.Error(t, err)
	assert.Nil(t, detalle)
	assert.Equal(t, []string{"pagar-productos"}, stub.calls,
		"step 2 must never run after a step 1 failure")
	_, ok := svc.Detalle("c1")
	assert.False(t, ok)
}

func TestPagarFallaEnServiciosDescartaProductos(t *testing.T) {
	stub := newStubCuentasAPI()
	stub.productosDesglose = model.Desglose{Total: decimal.NewFromInt(50)}
	stub.pagarServiciosErr = errors.New("boom")
	svc := newTestCuentaService(stub)

	detalle, err := svc.Pagar(context.Background(), "tok", "c1")

	require.Error(t, err)
	assert.Nil(t, detalle)
	_, ok := svc.Detalle("c1")
	assert.False(t, ok, "a partial settlement must never be revealed")
	assert.NotContains(t, stub.calls, "listar", "the account list must not reload on failure")
}

func TestCerrarDetalleRecargaListado(t *testing.T) {
	stub := newStubCuentasAPI(model.Cuenta{ID: "c1", Titular: "Ana"})
	svc := newTestCuentaService(stub)
	_, err := svc.Listar(context.Background(), "tok")
	require.NoError(t, err)
	_, err = svc.Pagar(context.Background(), "tok", "c1")
	require.NoError(t, err)

	require.NoError(t, svc.CerrarDetalle(context.Background(), "tok", "c1"))

	_, ok := svc.Detalle("c1")
	assert.False(t, ok)
	assert.Equal(t, "listar", stub.calls[len(stub.calls)-1])
}

func TestLockForSerializaPorCuenta(t *testing.T) {
	svc := newTestCuentaService(newStubCuentasAPI())

	a1 := svc.lockFor("a")
	a2 := svc.lockFor("a")
	b := svc.lockFor("b")

	assert.Same(t, a1, a2)
	assert.NotSame(t, a1, b)
}
