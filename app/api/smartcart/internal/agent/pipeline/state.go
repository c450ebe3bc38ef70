package pipeline

// State is the record threaded through one pipeline run. Each stage returns
// an extended copy; no field set by an earlier stage is ever overwritten, so
// a run grows the state monotonically toward FinalMessage.
type State struct {
	UserMessage  string
	Intent       string
	Product      string
	ToolOutput   string
	FinalMessage string
}
