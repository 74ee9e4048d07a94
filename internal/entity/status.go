package entity

type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusClosed  TransactionStatus = "CLOSED"
)

func (t TransactionStatus) String() string {
	return string(t)
}

// IsTerminal is true once no further state change is expected.
func (t TransactionStatus) IsTerminal() bool {
	return t == TransactionStatusSuccess || t == TransactionStatusFailed
}

// View is the status screen variant a page renders.
type View string

const (
	ViewSuccess View = "success"
	ViewFailed  View = "failed"
	ViewPending View = "pending"
	ViewExpired View = "expired"
	ViewNeutral View = "neutral"
)

func (v View) String() string {
	return string(v)
}

// StatusView maps a polled status to a view. Matching is case-sensitive and
// unknown values render the neutral view.
func StatusView(s TransactionStatus) View {
	switch s {
	case TransactionStatusSuccess:
		return ViewSuccess
	case TransactionStatusFailed:
		return ViewFailed
	case TransactionStatusPending:
		return ViewPending
	case TransactionStatusClosed:
		return ViewExpired
	default:
		return ViewNeutral
	}
}

// CreationView maps the status of a payment creation response. Unknown values
// fail closed; ok is false for them so the caller can report the surprise.
func CreationView(s TransactionStatus) (view View, ok bool) {
	switch s {
	case TransactionStatusSuccess:
		return ViewSuccess, true
	case TransactionStatusPending:
		return ViewPending, true
	case TransactionStatusFailed:
		return ViewFailed, true
	default:
		return ViewFailed, false
	}
}
