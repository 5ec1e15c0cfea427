// Package organizer moves the files of one directory into category
// subfolders derived from their extensions.
//
// It scans the immediate entries of the target, classifies each regular file,
// and performs collision-safe moves into <target>/<category>. Directories are
// never moved, which keeps repeated runs idempotent: once files sit inside
// their category folders a second run finds only directories and does
// nothing. Dry-run mode computes the same plan without touching the
// filesystem. Every entry's fate is recorded in a Report, one result per
// discovered entry, regardless of success or failure.
package organizer
