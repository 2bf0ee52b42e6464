package domain

import "errors"

// Reasons a lookup produced no result. They are reported by Diagnose and
// logged, but never returned from ResolveEntityPath or the locator.
var (
	ErrNoProjectRoot      = errors.New("no project root")
	ErrManifestNotFound   = errors.New("routes manifest not found")
	ErrManifestUnreadable = errors.New("routes manifest unreadable")
	ErrNoMatch            = errors.New("no matching import")
	ErrScanFailure        = errors.New("manifest scan failed")
)
