// Command tidy organizes the files of a directory into category subfolders
// derived from their extensions.
//
// The binary is a thin wrapper: flags resolve into a configuration, the
// organizer core does the work, and the resulting report is printed as a
// table, plain lines, or JSON.
package main
