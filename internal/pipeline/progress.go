package pipeline

// Reporter receives coarse progress updates from a generation run. A
// Reporter may be called from whatever goroutine runs the pipeline and must
// not block it.
type Reporter interface {
	Report(percentage int, message string)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(percentage int, message string)

// Report calls f.
func (f ReporterFunc) Report(percentage int, message string) { f(percentage, message) }

// NopReporter discards all progress updates.
var NopReporter Reporter = ReporterFunc(func(int, string) {})
