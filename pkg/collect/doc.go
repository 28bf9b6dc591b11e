// Package collect contains generic map helpers: last-wins merging, copying,
// key extraction with natural string ordering, and conversion of struct
// values to maps for dictionary-style consumers.
package collect
