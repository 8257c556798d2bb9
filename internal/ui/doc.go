package ui

// Package ui contains the Fyne-based desktop user interface. It wires user
// interactions to the ingest client and renders the form view, the result
// view, the size-limit slider, and transient clipboard feedback. The window
// content is rebuilt wholesale when a submission succeeds, so every view
// carries its own freshly bound widgets.
