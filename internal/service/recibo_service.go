package service

import (
	"context"
	"fmt"

	"comanda/internal/infra"
	"comanda/internal/model"
	"comanda/internal/notify"
	"comanda/internal/worker"
)

// reciboDispatcher is what the service needs from the worker dispatcher.
type reciboDispatcher interface {
	EnqueueRecibo(ctx context.Context, payload interface{}) error
}

// ReciboService turns an open settlement detail into a printable artifact:
// a PDF on disk, optionally delivered by e-mail through the async worker
// pool. Both paths are pure display-surface side effects — no entity state is
// touched.
type ReciboService struct {
	dispatcher  reciboDispatcher
	notices     *notify.Center
	storagePath string
}

func NewReciboService(dispatcher reciboDispatcher, notices *notify.Center, storagePath string) *ReciboService {
	return &ReciboService{dispatcher: dispatcher, notices: notices, storagePath: storagePath}
}

// Exportar renders the receipt PDF and returns its path.
func (s *ReciboService) Exportar(detalle *model.DetallePago) (string, error) {
	path, err := infra.GenerarReciboPDF(detalle, s.storagePath)
	if err != nil {
		s.notices.Error("Error al generar el recibo")
		return "", err
	}
	return path, nil
}

// Enviar renders the receipt and enqueues its e-mail delivery. The send
// itself happens asynchronously in the worker pool.
func (s *ReciboService) Enviar(ctx context.Context, detalle *model.DetallePago, toEmail string) error {
	path, err := s.Exportar(detalle)
	if err != nil {
		return err
	}

	payload := worker.ReciboJobPayload{
		ToEmail: toEmail,
		Subject: fmt.Sprintf("Detalle de pago — cuenta de %s", detalle.Titular),
		Body:    "Adjuntamos el detalle de pago de su cuenta. ¡Gracias por su visita!",
		PDFPath: path,
	}
	if err := s.dispatcher.EnqueueRecibo(ctx, payload); err != nil {
		s.notices.Error("Error al enviar el recibo")
		return err
	}
	s.notices.Info("Recibo enviado exitosamente")
	return nil
}
