package contact

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrDelivery      = errors.New("failed to deliver inquiry")
)
