// Package bdb reads Big Data Bowl tracking files from local disk
//
// Notes:
// - Plain .csv and gzip compressed .csv.gz are both accepted, gzip is detected by magic bytes
// - Rows are streamed through tracking.Decoder so a bad cell fails fast with its line number
// - Context is checked between rows, a cancelled load returns ctx.Err()
package bdb
