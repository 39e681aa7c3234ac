package types

// RunResult is the aggregate outcome of one formatting run.
// Nothing in it is persisted between runs.
type RunResult struct {
	// Checked counts files seen while walking directories, before filtering
	Checked int `json:"checked"`

	// Considered is the number of candidates handed to the formatter
	Considered int `json:"considered"`

	// Altered is the number of candidates whose mtime changed
	Altered int `json:"altered"`

	// AlteredPaths lists altered candidates in invocation order
	AlteredPaths []string `json:"altered_paths"`
}

// MarkAltered records path as altered
func (r *RunResult) MarkAltered(path string) {
	r.Altered++
	r.AlteredPaths = append(r.AlteredPaths, path)
}
