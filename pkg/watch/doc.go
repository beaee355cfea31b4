// Package watch keeps reports in sync with a changing configuration export.
// A Watcher debounces filesystem events on the export file; a Scheduler adds
// optional cron-driven regeneration for environments where change events are
// not dependable.
package watch
