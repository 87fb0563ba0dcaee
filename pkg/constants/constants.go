package constants

const (
	AppName      = "Floxenta"
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "FLOXENTA"

	// InquirySubject is the NATS subject accepted inquiries are published on.
	InquirySubject = "floxenta.inquiry.received"
)
