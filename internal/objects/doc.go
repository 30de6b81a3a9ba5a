// Package objects decrypts and re-encrypts FlipViewer object files.
//
// Only the leading 8 KiB of an object is ever protected, so processing
// streams the prefix through the feedback cipher and copies the rest.
// Files are processed concurrently with a bounded worker pool and written
// atomically via a temp file in the destination directory.
package objects
