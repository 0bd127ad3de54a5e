package infra

import (
	"testing"

	"comanda/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendReciboSinSMTPConfigurado(t *testing.T) {
	m := NewMailer(&config.Config{})

	err := m.SendRecibo("cliente@example.com", "", "", "")

	assert.ErrorIs(t, err, ErrSMTPNoConfigurado,
		"without a host and sender the mailer refuses before dialing")
}

func TestNewRedisURLInvalida(t *testing.T) {
	rdb, err := NewRedis("no-es-una-url")

	require.Error(t, err)
	assert.Nil(t, rdb)
	assert.Contains(t, err.Error(), "infra: redis url")
}
