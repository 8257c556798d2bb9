package platform

// Package platform contains OS integration glue: filesystem helpers, digest
// output naming, and opening saved digests in the system file manager.
