package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMailer struct {
	sent []ReciboJobPayload
	err  error
}

func (m *stubMailer) SendRecibo(to, subject, body, pdfPath string) error {
	m.sent = append(m.sent, ReciboJobPayload{ToEmail: to, Subject: subject, Body: body, PDFPath: pdfPath})
	return m.err
}

var _ reciboSender = (*stubMailer)(nil)

func TestProcessEnviaRecibo(t *testing.T) {
	mailer := &stubMailer{}
	w := NewReciboWorker(mailer)

	payload, err := json.Marshal(ReciboJobPayload{
		ToEmail: "ana@bar.mx",
		Subject: "Detalle de pago — cuenta de Ana",
		Body:    "Adjuntamos su recibo.",
		PDFPath: "/tmp/recibo_c1.pdf",
	})
	require.NoError(t, err)

	w.Process(context.Background(), payload)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ana@bar.mx", mailer.sent[0].ToEmail)
	assert.Equal(t, "/tmp/recibo_c1.pdf", mailer.sent[0].PDFPath)
}

func TestProcessIgnoraPayloadInvalido(t *testing.T) {
	mailer := &stubMailer{}
	w := NewReciboWorker(mailer)

	w.Process(context.Background(), json.RawMessage(`{no-es-json`))
	w.Process(context.Background(), json.RawMessage(`{"subject":"sin destinatario"}`))

	assert.Empty(t, mailer.sent)
}

func TestProcessNoReintentaTrasFallo(t *testing.T) {
	mailer := &stubMailer{err: errors.New("smtp down")}
	w := NewReciboWorker(mailer)

	payload, _ := json.Marshal(ReciboJobPayload{ToEmail: "ana@bar.mx"})
	w.Process(context.Background(), payload)

	assert.Len(t, mailer.sent, 1, "delivery is attempted once and never retried")
}

func TestProcessJobEnrutaPorTipo(t *testing.T) {
	mailer := &stubMailer{}
	handlers := &Handlers{Recibo: NewReciboWorker(mailer)}

	payload, _ := json.Marshal(ReciboJobPayload{ToEmail: "ana@bar.mx"})
	job, _ := json.Marshal(Job{Type: "recibo", Payload: payload})

	processJob(context.Background(), handlers, QueueRecibos, string(job))
	processJob(context.Background(), handlers, QueueRecibos, `{"type":"desconocido","payload":{}}`)

	assert.Len(t, mailer.sent, 1)
}
