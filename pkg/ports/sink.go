package ports

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveLayoutJSON saves the text layout plan of one image as JSON.
	SaveLayoutJSON(index int, data []byte) error

	// SaveImage saves one encoded image.
	SaveImage(index int, data []byte) error

	// SaveArchive saves a packaged bulk archive.
	SaveArchive(name string, data []byte) error
}
