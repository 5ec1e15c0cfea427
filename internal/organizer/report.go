package organizer

// Action describes what the organizer decided to do with an entry.
type Action int

const (
	// ActionMove relocates a file into its category folder.
	ActionMove Action = iota
	// ActionSkipDir leaves a directory entry untouched.
	ActionSkipDir
	// ActionSkipOrganized leaves a file that already sits at its destination.
	ActionSkipOrganized
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionSkipDir:
		return "skip-directory"
	case ActionSkipOrganized:
		return "skip-organized"
	default:
		return "unknown"
	}
}

// Outcome describes how acting on an entry ended.
type Outcome int

const (
	// OutcomeMoved marks a completed live move.
	OutcomeMoved Outcome = iota
	// OutcomePlanned marks a dry-run move that was not performed.
	OutcomePlanned
	// OutcomeSkipped marks entries the organizer deliberately left alone.
	OutcomeSkipped
	// OutcomeFailed marks entries whose move or folder creation failed.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomePlanned:
		return "planned"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileEntry is a snapshot of one discovered directory entry.
type FileEntry struct {
	// Name is the base name of the entry.
	Name string
	// Ext is the lowercase extension without the leading dot; empty for
	// directories, dotfiles, and extension-less files.
	Ext string
	// Path is the absolute path of the entry at scan time.
	Path string
}

// Result records the organizer's decision and outcome for one entry.
type Result struct {
	Entry    FileEntry
	Action   Action
	Category string
	// Destination is the resolved target path for moves; empty for skips.
	Destination string
	Outcome     Outcome
	// Reason carries the failure detail when Outcome is OutcomeFailed.
	Reason string
}

// Report aggregates the results of one organizer invocation in scan order.
type Report struct {
	RunID     string
	TargetDir string
	DryRun    bool
	Results   []Result

	Moved            int
	Planned          int
	SkippedDirs      int
	SkippedOrganized int
	Failed           int
}

func (r *Report) add(result Result) {
	r.Results = append(r.Results, result)
	switch result.Outcome {
	case OutcomeMoved:
		r.Moved++
	case OutcomePlanned:
		r.Planned++
	case OutcomeSkipped:
		if result.Action == ActionSkipDir {
			r.SkippedDirs++
		} else {
			r.SkippedOrganized++
		}
	case OutcomeFailed:
		r.Failed++
	}
}
