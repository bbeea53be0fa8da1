package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":           "is required",
	"email":              "must be a valid email",
	"min":                "must be at least %s characters long",
	"max":                "maximum at %s characters long",
	"gt":                 "must be greater than %s",
	"gte":                "must be greater than or equal to %s",
	"oneof":              "must be one of [%s]",
	"datetime":           "must match the format %s",
	"appointment_date":   "must be a calendar date in YYYY-MM-DD format",
	"start_time":         "must be a clock time such as 10:00 AM",
	"appointment_status": "must be one of [Scheduled, Completed, Cancelled]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gt":       true,
	"gte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientBookingNotFound               = "booking not found"
	ErrClientBillNotFound                  = "bill not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientSlotAlreadyBooked             = "this time slot is already booked, please pick another one"
	ErrClientSlotBeingHeld                 = "this time slot is being held by another booking, please try again shortly"
	ErrClientInvalidBookingTransition      = "this booking can no longer change to the requested state"
	ErrClientInvalidAppointmentStatus      = "this appointment can no longer change to the requested status"
	ErrClientPaymentFailed                 = "payment could not be completed, please retry"
	ErrClientStoreUnavailable              = "the service is temporarily unavailable, please try again"
)

// Error messages for developers
const (
	ErrDevInvalidInput        = "invalid input"
	ErrDevCannotParseJSON     = "cannot parse JSON"
	ErrDevCannotMarshalJSON   = "cannot marshal JSON"
	ErrDevValidationFailed    = "request validation failed"
	ErrDevDocumentNotFound    = "document not found"
	ErrDevServerDeadline      = "server deadline exceeded"
	ErrDevURLParamIDRequired  = "URL parameter %s is required"
	ErrDevQueryParamRequired  = "query parameter %s is required"

	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid ObjectID"
	ErrDevDBDuplicateSlot            = "duplicate scheduled appointment for doctor/date/start time"

	ErrDevRedisSet     = "failed to set value on redis"
	ErrDevRedisGet     = "failed to get value from redis, key: %s"
	ErrDevRedisDelete  = "failed to delete value from redis"
	ErrDevRedisUnlock  = "failed to release redis lock"

	ErrDevBookingInvalidTransition = "invalid booking state transition from %s to %s"
	ErrDevAppointmentStatusChange  = "invalid appointment status change from %s to %s"
	ErrDevBookingTokenInvalid      = "booking token invalid or expired"

	ErrDevSlotGridConfig = "availability slot grid configuration is invalid"

	ErrDevStripeCreateSession = "failed to create stripe checkout session"
	ErrDevSMTPSendEmail       = "failed to send email through SMTP host %s"
	ErrDevRabbitMQPublish     = "failed to publish message to queue %s"
)
