package ingest

// Package ingest submits ingest requests to a gitingest server and turns the
// server-rendered HTML response into a digest the client can display. The
// server's page layout is treated as opaque beyond a small set of known
// element roles.
