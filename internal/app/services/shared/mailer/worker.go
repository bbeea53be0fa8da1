package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"radiox-service/internal/app/drivers/mailer"
	"radiox-service/internal/pkg/constvars"
	"radiox-service/internal/pkg/dto/requests"
	"radiox-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// smtpSendRatePerSecond keeps the worker inside the mail relay's throughput limits.
const smtpSendRatePerSecond = 2

// Worker drains the confirmation email queue and delivers each payload over SMTP.
type Worker struct {
	log     *zap.Logger
	client  *mailer.SMTPClient
	channel *amqp091.Channel
	queue   string
	limiter *rate.Limiter
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewWorker(logger *zap.Logger, client *mailer.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string) (*Worker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &Worker{
		log:     logger,
		client:  client,
		channel: channel,
		queue:   queue,
		limiter: rate.NewLimiter(rate.Limit(smtpSendRatePerSecond), 1),
		done:    make(chan struct{}),
	}, nil
}

// Start begins consuming in a background goroutine. Use Stop to shut it down.
func (w *Worker) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	deliveries, err := w.channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		cancel()
		return err
	}

	go w.run(runCtx, deliveries)
	return nil
}

func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	<-w.done
	_ = w.channel.Close()
}

func (w *Worker) run(ctx context.Context, deliveries <-chan amqp091.Delivery) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}
			if err := w.limiter.Wait(ctx); err != nil {
				_ = delivery.Nack(false, true)
				return
			}
			w.handleDelivery(ctx, delivery)
		}
	}
}

func (w *Worker) handleDelivery(ctx context.Context, delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.log.Error("mailer.worker: cannot unmarshal email payload, dropping message",
			zap.String(constvars.LoggingQueueKey, w.queue),
			zap.Error(err),
		)
		_ = delivery.Nack(false, false)
		return
	}

	if err := w.sendConfirmationEmail(&payload); err != nil {
		w.log.Error("mailer.worker: failed to send confirmation email",
			zap.String(constvars.LoggingEmailToKey, payload.ToEmail),
			zap.String(constvars.LoggingAppointmentIDKey, payload.AppointmentID),
			zap.Error(err),
		)
		_ = delivery.Nack(false, false)
		return
	}

	w.log.Info("mailer.worker: confirmation email sent",
		zap.String(constvars.LoggingEmailToKey, payload.ToEmail),
		zap.String(constvars.LoggingAppointmentIDKey, payload.AppointmentID),
	)
	_ = delivery.Ack(false)
}

func (w *Worker) sendConfirmationEmail(payload *requests.EmailPayload) error {
	htmlBody := renderConfirmationHTML(payload)
	msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat, payload.ToEmail, constvars.EmailConfirmationSubject, htmlBody))
	addr := fmt.Sprintf("%s:%d", w.client.Host, w.client.Port)
	err := smtp.SendMail(addr, w.client.Auth, w.client.EmailSender, []string{payload.ToEmail}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, w.client.Host)
	}
	return nil
}

func renderConfirmationHTML(payload *requests.EmailPayload) string {
	return fmt.Sprintf(
		`<html><body>`+
			`<p>Dear %s,</p>`+
			`<p>%s</p>`+
			`<table>`+
			`<tr><td>Service</td><td>%s</td></tr>`+
			`<tr><td>Date</td><td>%s</td></tr>`+
			`<tr><td>Time</td><td>%s</td></tr>`+
			`<tr><td>Location</td><td>%s</td></tr>`+
			`<tr><td>Doctor</td><td>%s</td></tr>`+
			`<tr><td>Appointment ID</td><td>%s</td></tr>`+
			`<tr><td>Total paid</td><td>%s</td></tr>`+
			`</table>`+
			`<p>%s<br/>Reply to: %s</p>`+
			`</body></html>`,
		payload.ToName,
		payload.Message,
		payload.ServiceName,
		payload.AppointmentDate,
		payload.AppointmentTime,
		payload.AppointmentLocation,
		payload.DoctorName,
		payload.AppointmentID,
		payload.TotalAmount,
		payload.FromName,
		payload.ReplyTo,
	)
}
