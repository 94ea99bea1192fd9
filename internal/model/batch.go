package model

// Batch is the snapshot a conversion run operates on. Edits to the file list
// or option widgets after Start do not affect a running batch.
type Batch struct {
	ID        string
	Files     []string
	Options   ConversionOptions
	OutputDir string
}

// NewBatch copies files so later edits by the caller are not observed
func NewBatch(files []string, opts ConversionOptions, outputDir string) Batch {
	snapshot := make([]string, len(files))
	copy(snapshot, files)
	return Batch{
		ID:        newID("batch-"),
		Files:     snapshot,
		Options:   opts,
		OutputDir: outputDir,
	}
}
