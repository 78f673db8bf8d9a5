// Package logtail reads and purges the error log that errlens analyses.
//
// # Reading
//
// Load returns an errlog.Source and is the only way the rest of errlens
// touches the log file. It distinguishes three states:
//
//   - the file does not exist: Source.Available is false, no error
//   - the file exists but is empty: Source.Available is true, no lines
//   - the file could not be opened or read: an error is returned
//
// Read does the actual work. With a positive line cap it keeps a ring
// buffer of that many lines while scanning, so memory stays at
// O(maxLines) for very large logs and the last lines come back in file
// order:
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line, store it at the current index and advance (wrapping)
//	3. If fewer than maxLines were seen, return the first 'count' entries
//	4. Otherwise return the buffer starting at the current index
//
// A cap of zero or less reads the whole file.
//
// Lines longer than 1MB stop the scan with an error.
//
// # Purging
//
// Truncate cuts the file to zero bytes in place, so a following Load reports
// an available, empty log rather than a missing one.
//
// # Design Rationale
//
// The package does no classification and no formatting; that belongs to
// errlog and render. It does not follow the file either: errlens works on a
// finite snapshot of the log.
package logtail
