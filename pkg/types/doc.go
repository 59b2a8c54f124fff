// Package types defines the roster entities, derived metadata, filter
// specification, team and store types shared by the planner packages, along
// with the TeamRepository interface and standard error values.
package types
