package config

type InternalConfig struct {
	App     App
	Booking Booking
	Slots   Slots
	Stripe  Stripe
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	MailerQueue                string
}

type Booking struct {
	// TokenSecret signs the booking JWT handed to the client for the checkout flow.
	TokenSecret                 string
	TokenExpiryTimeInMinutes    int
	SlotHoldExpiryTimeInMinutes int
	DefaultCurrency             string
}

type Slots struct {
	// Daily slot grid the availability endpoint derives free slots from.
	DayStartTime string
	DayEndTime   string
	StepMinutes  int
}

type Stripe struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
}
