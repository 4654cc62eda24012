package models

import "fmt"

// Export types accepted by the export-tasks endpoint. The server owns the
// vocabulary; these constants cover the documented values.
const (
	ExportTypeResult       = "result"
	ExportTypeAdvancers    = "advancers"
	ExportTypeMergeEntries = "merge-entries"
	ExportTypeMergeResults = "merge-results"
)

// ExportFormatHY3 is the only export format the workflow produces.
const ExportFormatHY3 = "hy3"

// FilterAll is the team/session filter value meaning "no restriction".
const FilterAll = -1

// TaskState is the lifecycle state of a server-side export task. The client
// only ever observes state via polling; it never writes it.
type TaskState string

const (
	TaskPending    TaskState = "pending"
	TaskProcessing TaskState = "processing"
	TaskCompleted  TaskState = "completed"
	TaskFailed     TaskState = "failed"
	TaskUnknown    TaskState = "unknown"
)

// ParseTaskState normalises a currentState value from the wire. Anything
// outside the known vocabulary maps to TaskUnknown, which the poller treats as
// non-terminal.
func ParseTaskState(s string) TaskState {
	switch TaskState(s) {
	case TaskPending, TaskProcessing, TaskCompleted, TaskFailed:
		return TaskState(s)
	default:
		return TaskUnknown
	}
}

// IsTerminal reports whether no further transitions can occur.
func (s TaskState) IsTerminal() bool {
	return s == TaskCompleted || s == TaskFailed
}

// ExportRequest describes one export to be produced. TaskID must be generated
// before the create call and reused verbatim for every subsequent status poll.
type ExportRequest struct {
	MeetID        string
	ExportType    string
	ExportFormat  string
	TeamFilter    int
	SessionFilter int
	TaskID        string
}

// ExportTask is a read-only projection of the remote task resource.
// ExportHref is the signed download URL, present only once the task has
// completed.
type ExportTask struct {
	TaskID         string
	MeetID         string
	State          TaskState
	ExportHref     string
	ExportFilename string
	ErrorMessage   string
	CreatedAt      string
}

// DownloadedArtifact describes an export archive written to local storage.
type DownloadedArtifact struct {
	LocalPath string
	SizeBytes int64
	SourceURL string
}

// FilterOption is the {value, label} pair the export-tasks endpoint expects
// for team and session scoping. Value -1 means no restriction.
type FilterOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// ExportOptions scopes an export to a team and/or a meet session.
type ExportOptions struct {
	Team    FilterOption `json:"team"`
	Session FilterOption `json:"session"`
}

// TeamFilter builds the team scoping option the export-tasks endpoint
// expects. FilterAll produces the "All Teams" option.
func TeamFilter(value int) FilterOption {
	if value == FilterAll {
		return FilterOption{Value: FilterAll, Label: "All Teams"}
	}
	return FilterOption{Value: value, Label: fmt.Sprintf("Team %d", value)}
}

// SessionFilter builds the session scoping option the export-tasks endpoint
// expects. FilterAll produces the "All Sessions" option.
func SessionFilter(value int) FilterOption {
	if value == FilterAll {
		return FilterOption{Value: FilterAll, Label: "All Sessions"}
	}
	return FilterOption{Value: value, Label: fmt.Sprintf("Session %d", value)}
}

// ExportTaskAttributes is the JSON:API attributes object of an exportTask
// resource, used both in the create payload and when decoding poll responses.
type ExportTaskAttributes struct {
	ExportType     string         `json:"exportType"`
	ExportFormat   string         `json:"exportFormat"`
	ExportOptions  *ExportOptions `json:"exportOptions,omitempty"`
	CurrentState   string         `json:"currentState,omitempty"`
	ExportHref     string         `json:"exportHref,omitempty"`
	ExportFilename string         `json:"exportFilename,omitempty"`
	ErrorMessage   string         `json:"errorMessage,omitempty"`
	CreatedAt      string         `json:"createdAt,omitempty"`
}
