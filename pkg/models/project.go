package models

// ProjectRequest is the resolved input of a single scaffold run.
// Name is both the generator argument and the relative project root.
type ProjectRequest struct {
	Name         string
	Architecture Architecture
}
