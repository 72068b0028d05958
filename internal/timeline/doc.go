// Package timeline converts a schedule into chart geometry.
//
// Every function in this package is pure: the same schedule, resolution,
// viewport width and start-of-week always yield identical output. Callers
// recompute a fresh Snapshot whenever one of those inputs changes and swap
// it in whole; nothing here is mutated in place.
//
// Calendar dates are compared after normalising to midnight in their own
// location, so the time of day on an input never changes a day count.
package timeline
