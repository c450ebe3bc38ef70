package intent

const (
	IntentAdd    = "add"
	IntentRemove = "remove"
	IntentNone   = "none"
)

// Decision is the structured result of classifying one user message.
// Intent carries the lowercased action keyword; keywords other than
// add/remove are kept as-is and resolved downstream.
type Decision struct {
	Intent    string
	Product   string
	RawOutput string
}

// Actionable reports whether the dispatcher has anything to do.
func (d Decision) Actionable() bool {
	return d.Intent != IntentNone && d.Intent != "" && d.Product != ""
}
