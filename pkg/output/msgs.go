package output

// Messages shown during a run. Scripts grep for these, keep the wording.
const (
	MsgFindingFiles   = "Finding files..."
	MsgCheckedStatus  = "Checked %d - Found %d - %s"
	MsgDoneFinding    = "...done finding files. Found: %d"
	MsgRunningFormat  = "Running %s on %d files..."
	MsgFileStatus     = "File %d/%d (%.1f%%) - %s"
	MsgFileAltered    = "File altered: %s"
	MsgDoneSummary    = "Done - altered %d files"
	MsgPathNotExisted = "Given path did not exist: %s"
)
