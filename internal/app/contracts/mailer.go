package contracts

import (
	"context"
	"radiox-service/internal/pkg/dto/requests"
)

type MailerService interface {
	// SendEmail queues the payload for delivery; it never blocks on the SMTP round trip.
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}
