// Package constant centralizes telemetry names and label rules shared by
// the failure-reporting packages.
package constant
