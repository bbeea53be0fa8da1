package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	MongoCollectionAppointments = "appointments"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionBills        = "bills"
	MongoCollectionBookings     = "bookings"
)

const (
	// Redis key formats
	RedisSlotHoldKeyFormat       = "slot_hold:%s"
	RedisDoctorDirectoryCacheKey = "doctor_directory"

	// slot hold key is doctor first|last|date|startTime, lowercased
	SlotKeyFormat = "%s|%s|%s|%s"
)

const (
	AppointmentDateLayout = "2006-01-02"
	AppointmentTimeLayout = "3:04 PM"
)
