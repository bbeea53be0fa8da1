package mailer

import (
	"context"
	"radiox-service/internal/app/contracts"
	"radiox-service/internal/pkg/constvars"
	"radiox-service/internal/pkg/dto/requests"
	"radiox-service/internal/pkg/exceptions"
	"regexp"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	mailerServiceInstance contracts.MailerService
	onceMailerService     sync.Once
)

type mailerService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

func NewMailerService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.MailerService, error) {
	var initErr error
	onceMailerService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			initErr = err
			return
		}

		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			initErr = err
			return
		}

		mailerServiceInstance = &mailerService{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
	})
	return mailerServiceInstance, initErr
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("mailerService.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailToKey, request.ToEmail),
		zap.String(constvars.LoggingQueueKey, s.Queue),
	)

	if !validateEmail(request.ToEmail) {
		return exceptions.ErrInputValidation(nil)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		customErr := exceptions.ErrRabbitMQPublish(err, s.Queue)
		s.Log.Error("mailerService.SendEmail error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(customErr),
		)
		return customErr
	}

	return nil
}

func validateEmail(email string) bool {
	re := regexp.MustCompile(constvars.RegexEmail)
	return re.MatchString(email)
}
