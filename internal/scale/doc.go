package scale

// Package scale maps the linear size-limit slider to byte sizes on an
// exponential curve and formats sizes for display. Pure functions, no
// dependencies.
