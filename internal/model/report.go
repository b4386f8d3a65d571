package model

// Stats summarizes what a single minification run changed.
type Stats struct {
	InputBytes         int
	OutputBytes        int
	CommentsRemoved    int
	IdentifiersRenamed int // renamed occurrences, declarations and uses
	NamesGenerated     int // distinct rename table entries
	MaxScopeDepth      int
}

// Result is the outcome of minifying one source.
type Result struct {
	Code  []byte
	Stats Stats
}

// FileResult holds the minification result for a single source file.
type FileResult struct {
	Source Source
	Output Path // empty when written to stdout
	Result Result
}

// CheckStatus is the verdict of comparing an original and a minified build.
type CheckStatus string

const (
	// CheckPassed means both programs compiled and exited with the same status.
	CheckPassed CheckStatus = "passed"
	// CheckFailed means the exit statuses differ or the minified build broke.
	CheckFailed CheckStatus = "failed"
	// CheckSkipped means the original itself did not compile.
	CheckSkipped CheckStatus = "skipped"
)

// CheckReport represents the equivalence result for one fixture.
type CheckReport struct {
	Fixture      Path
	Status       CheckStatus
	OriginalExit int
	MinifiedExit int
	Detail       string // compiler output or failure reason
}
