package repository

// Timeframe is the analysis window requested from the signal source and
// stamped onto the resulting trends.
type Timeframe string

const (
	TF1m  Timeframe = "1m"
	TF3m  Timeframe = "3m"
	TF6m  Timeframe = "6m"
	TF12m Timeframe = "12m"
)

// IsValidTimeframe returns true if tf is a supported timeframe.
func IsValidTimeframe(tf Timeframe) bool {
	switch tf {
	case TF1m, TF3m, TF6m, TF12m:
		return true
	default:
		return false
	}
}

// DefaultTimeframe returns the default analysis window.
func DefaultTimeframe() Timeframe { return TF6m }

// NormalizeTimeframe converts raw string to a valid timeframe (or default).
func NormalizeTimeframe(s string) Timeframe {
	if s == "" {
		return DefaultTimeframe()
	}
	tf := Timeframe(s)
	if IsValidTimeframe(tf) {
		return tf
	}
	return DefaultTimeframe()
}
