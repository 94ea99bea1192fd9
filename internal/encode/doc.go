// Package encode drives the external transcoding tool.
//
// It builds the tool's argument vector from a ConversionOptions snapshot,
// derives destination paths, runs one child process at a time with its
// combined output streamed line by line, and walks a batch of files with
// cooperative cancellation.
package encode
