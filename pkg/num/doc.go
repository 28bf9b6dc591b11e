// Package num contains numeric helpers: generic clamping and exact decimal
// summation for tabular data where float64 accumulation would drift.
package num
