package appointment

import "github.com/BruksfildServices01/haircut-scheduler/internal/httperr"

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// ParsePaymentMethod defaults an empty value to cash.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case "":
		return PaymentCash, nil
	case PaymentCash, PaymentOnline:
		return m, nil
	}
	return "", httperr.Validation("invalid_payment_method")
}

// InitialPaymentStatus: online payments were captured before booking.
func InitialPaymentStatus(m PaymentMethod) PaymentStatus {
	if m == PaymentOnline {
		return PaymentCompleted
	}
	return PaymentPending
}
