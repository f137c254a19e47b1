package domain

import "go.trai.ch/zerr"

var (
	// ErrLockfileUnrecognized is returned when the lockfile text parses as
	// YAML but contains none of the recognized top-level sections.
	ErrLockfileUnrecognized = zerr.New("lockfile has no recognizable sections")

	// ErrUnknownBatchFormat is returned when the batch file header matches
	// neither the standard-list nor the security-report layout.
	ErrUnknownBatchFormat = zerr.New("unrecognized batch file format")

	// ErrCheckFailed signals that an ad-hoc check did not find the requested
	// package/version. The CLI maps it to a non-zero exit status.
	ErrCheckFailed = zerr.New("check failed")
)
