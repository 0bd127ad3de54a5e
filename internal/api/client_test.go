package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoDecodificaRespuesta(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id_cuenta":"c1","nombre_titular":"Ana","estado":"ACTIVO"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	cuentas, err := NewCuentasClient(c).Listar(context.Background(), "tok-123")

	require.NoError(t, err)
	require.Len(t, cuentas, 1)
	assert.Equal(t, "Ana", cuentas[0].Titular)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestDoSinTokenOmiteAuthorization(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"email":"a@b.c","expiresIn":"1h","accessToken":"t"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := NewAuthClient(c).Login(context.Background(), "a@b.c", "pw")

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestDoRechazoRemotoConservaEstadoYDetalle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"la cuenta ya existe"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := NewCuentasClient(c).Registrar(context.Background(), "tok", "Ana")

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusConflict, remote.Status)
	assert.Equal(t, "la cuenta ya existe", remote.Detail)
	assert.Equal(t, "Código de error: 409, mensaje: la cuenta ya existe", Message(err))
}

func TestDoRechazoConEnvelopeMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"sku duplicado"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	err := NewCuentasClient(c).Cancelar(context.Background(), "tok", "c1")

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "sku duplicado", remote.Detail)
}

func TestMessageColapsaFallosDeTransporte(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := NewCuentasClient(c).Listar(context.Background(), "tok")

	require.Error(t, err)
	var remote *RemoteError
	assert.False(t, errors.As(err, &remote))
	assert.Equal(t, "Error desconocido: no se pudo contactar al servidor", Message(err))
}

func TestDoCuentaRespuestaSinCuerpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	assert.NoError(t, NewCuentasClient(c).Actualizar(context.Background(), "tok", "c1", "Ana Maria"))
}

func TestBreakerAbreTrasFallosDeTransporte(t *testing.T) {
	// Unroutable address: every call is a transport failure.
	c := NewClient("http://127.0.0.1:1", 100*time.Millisecond)
	cuentas := NewCuentasClient(c)

	for i := 0; i < 5; i++ {
		_, err := cuentas.Listar(context.Background(), "tok")
		require.Error(t, err)
	}

	assert.Equal(t, BreakerOpen, c.Breaker().State())
	_, err := cuentas.Listar(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrBreakerOpen)
}

func TestBreakerIgnoraRespuestasNoExitosas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	cuentas := NewCuentasClient(c)

	for i := 0; i < 10; i++ {
		_, err := cuentas.Listar(context.Background(), "tok")
		var remote *RemoteError
		require.ErrorAs(t, err, &remote)
	}

	assert.Equal(t, BreakerClosed, c.Breaker().State(),
		"a 5xx answer proves the backend is alive and must not trip the breaker")
}

func TestBreakerIgnoraCancelacionesDelLlamante(t *testing.T) {
	// The backend is healthy, just slower than an impatient caller.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(150 * time.Millisecond):
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	cuentas := NewCuentasClient(c)

	for i := 0; i < 6; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		_, err := cuentas.Listar(ctx, "tok")
		cancel()
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrBreakerOpen)
	}

	assert.Equal(t, BreakerClosed, c.Breaker().State(),
		"abandoned requests say nothing about backend health")
	_, err := cuentas.Listar(context.Background(), "tok")
	assert.NoError(t, err, "a patient caller still reaches the backend")
}

func TestBreakerSeRecuperaEnHalfOpen(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 2, SuccessThreshold: 2, OpenTimeout: 10 * time.Millisecond})
	boom := errors.New("boom")

	for i := 0; i < 2; i++ {
		_ = b.Execute(func() error { return boom })
	}
	require.Equal(t, BreakerOpen, b.State())

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, BreakerHalfOpen, b.State())

	require.NoError(t, b.Execute(func() error { return nil }))
	require.NoError(t, b.Execute(func() error { return nil }))
	assert.Equal(t, BreakerClosed, b.State())
}
