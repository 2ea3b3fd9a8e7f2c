package generator

// Progress represents one status update; Increment is a percentage of the whole run
type Progress struct {
	Message   string
	Increment float64
}

// Reporter receives status updates
type Reporter interface {
	Report(progress Progress)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(progress Progress)

func (f ReporterFunc) Report(progress Progress) {
	f(progress)
}

const (
	samplesShare = 25
	modulesShare = 25
	// boundariesShare is split evenly across boundaries
	boundariesShare = 50

	messageSvgs      = "Svgs"
	messageSamples   = "Samples"
	messageModules   = "Modules"
	messageDone      = "Done!"
	messageCancelled = "Cancelled"
)
