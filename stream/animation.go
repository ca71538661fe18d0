package stream

// An Animation renders frames for the runtime it is asked about.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}
