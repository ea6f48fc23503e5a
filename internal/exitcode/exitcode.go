package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	InputError      = 3
	ReportError     = 4
	ExportError     = 5
)
