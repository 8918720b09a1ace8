// Package model defines the data structures shared by the salience core and the annotation pipeline.
package model

// Path represents a file system path.
type Path string

// File identifies an input file together with its content fingerprint.
type File struct {
	Path Path
	Hash string
}

// Query is one decompiled function read from a query file. The first line
// is the function header and is never a selection candidate.
type Query struct {
	Source *File
	Index  int
	Lines  []string
}

// Block is a window over a query's lines produced by the block splitter.
type Block struct {
	Query *Query
	// Index is -1 when the block is the whole, unsplit query.
	Index int
	Start int
	Lines []string
}

// End returns the exclusive end offset of the block inside its query.
func (b Block) End() int {
	return b.Start + len(b.Lines)
}
