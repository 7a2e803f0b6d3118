package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTarget is returned for an unrecognized target selector.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrUnknownVariant is returned for an unrecognized variant selector.
	ErrUnknownVariant = zerr.New("unknown variant")

	// ErrProjectNotFound is returned when no forge.yaml can be discovered
	// from the current directory upward.
	ErrProjectNotFound = zerr.New("project configuration not found")

	// ErrScriptFailed is returned when a shell script exits non-zero. The
	// exit status is attached as metadata.
	ErrScriptFailed = zerr.New("script failed")

	// ErrArchiveLayout is returned when a fetched archive does not contain
	// exactly one top-level directory.
	ErrArchiveLayout = zerr.New("unexpected archive layout")
)
