package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingPatientIDKey        = "patient_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingBookingIDKey        = "booking_id"
	LoggingBookingStateKey     = "booking_state"
	LoggingBillIDKey           = "bill_id"
	LoggingDoctorKey           = "doctor"
	LoggingDateKey             = "date"
	LoggingStartTimeKey        = "start_time"
	LoggingSlotKeyKey          = "slot_key"
	LoggingRedisKey            = "redis_key"
	LoggingLockValueKey        = "lock_value"
	LoggingLockExpirationKey   = "lock_expiration"
	LoggingQueueKey            = "queue"
	LoggingEmailToKey          = "email_to"
	LoggingSessionIDKey        = "stripe_session_id"
	LoggingResponseCountKey    = "response_count"
)
