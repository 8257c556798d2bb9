package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCopy     = "📋"
	IconSave     = "💾"
)

// Text fragments
const (
	LabelCopied     = "Copied!"
	LabelCopyFailed = "Failed to copy"

	LabelIngest    = "Ingest"
	LabelNewIngest = "New ingest"
	LabelCopyTree  = IconCopy + " Copy tree"
	LabelCopyBody  = IconCopy + " Copy content"
	LabelCopyAll   = IconCopy + " Copy all"
	LabelSave      = IconSave + " Save digest"
)

// Copy feedback delays. The longer full-digest delay signals that a larger
// payload was copied.
const (
	CopyResetDelay       = time.Second
	FullDigestResetDelay = 2 * time.Second
)
