package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Appointment messages
	AppointmentScheduledSuccess    = "Appointment scheduled successfully"
	AppointmentUpdatedSuccessFmt   = "Your appointment %s has been updated successfully"
	AppointmentCancelledSuccessFmt = "Your appointment %s cancelled successfully"
	AppointmentCompletedSuccessFmt = "Your appointment %s marked as completed"
	AppointmentGetSuccess          = "get appointment successfully"
	AppointmentListSuccess         = "get appointments successfully"
	AvailabilityGetSuccess         = "get available slots successfully"

	// Booking messages
	BookingCreatedSuccess   = "booking created successfully"
	BookingGetSuccess       = "get booking successfully"
	BookingPaymentStarted   = "payment started successfully"
	BookingConfirmedSuccess = "booking confirmed successfully"
	BookingCancelledSuccess = "booking cancelled successfully"

	// Bill messages
	BillGeneratedSuccess         = "Bill generated successfully"
	BillGetSuccess               = "get bill successfully"
	BillUpdatedSuccess           = "bill updated successfully"
	BillDeletedSuccess           = "Bill deleted successfully"
	PaymentSessionCreatedSuccess = "payment session created successfully"

	// Doctor messages
	DoctorListSuccess = "get doctors successfully"
	DoctorGetSuccess  = "get doctor successfully"
)
