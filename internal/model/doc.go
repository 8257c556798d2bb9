package model

// Package model defines domain data structures shared across the app: ingest
// requests, digests extracted from server responses, and request status enums.
// Structures are designed for direct use in the UI and explicit state
// transitions.
