package types

// WorkItemKind classifies an input path at discovery time
type WorkItemKind int

const (
	// WorkItemFile is a regular file, filtered and queued directly
	WorkItemFile WorkItemKind = iota
	// WorkItemDirectory is expanded by a full recursive walk
	WorkItemDirectory
)

// String returns the string representation of the kind
func (k WorkItemKind) String() string {
	switch k {
	case WorkItemFile:
		return "file"
	case WorkItemDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// WorkItem is one input path after classification
type WorkItem struct {
	Path string
	Kind WorkItemKind
}
