package worker

// recibo_worker.go
// Processes receipt delivery jobs from QueueRecibos: sends the settlement
// receipt PDF to the customer by e-mail. Delivery is a display-surface side
// effect — nothing here mutates entity state, and a failed delivery is only
// logged, never retried.

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// ReciboJobPayload is the job envelope sent to QueueRecibos.
type ReciboJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path"`
}

// reciboSender is what the worker needs from the SMTP mailer.
type reciboSender interface {
	SendRecibo(to, subject, body, pdfPath string) error
}

// ReciboWorker processes receipt delivery jobs.
type ReciboWorker struct {
	mailer reciboSender
}

// NewReciboWorker creates a ReciboWorker with the provided SMTP mailer.
func NewReciboWorker(mailer reciboSender) *ReciboWorker {
	return &ReciboWorker{mailer: mailer}
}

// Process sends an email with the receipt PDF as attachment.
func (w *ReciboWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload ReciboJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("recibo_worker: empty to_email — skipping")
		return
	}

	if err := w.mailer.SendRecibo(payload.ToEmail, payload.Subject, payload.Body, payload.PDFPath); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("recibo_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("recibo_worker: recibo sent successfully")
}
