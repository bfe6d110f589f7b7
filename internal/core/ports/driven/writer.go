package driven

// FileWriter applies rendered output to the filesystem through the
// marker-merge rules: new files get the identity marker and a begin/end
// pair; existing marked files have only the region between the markers
// replaced; existing unmarked files fail with domain.ErrMarkerConflict.
type FileWriter interface {
	// WriteGenerated writes or merges body into the file at path.
	// schemaName feeds the identity marker line.
	WriteGenerated(path, schemaName, body string) error

	// Remove deletes a previously generated file. Removing a file that no
	// longer exists is not an error.
	Remove(path string) error
}
