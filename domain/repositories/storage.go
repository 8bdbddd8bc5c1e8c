package repositories

import "time"

// Storage persists synthesized audio artifacts and serves them publicly.
type Storage interface {
	// Put writes data under the given name.
	Put(name string, data []byte) error
	// URL returns the public URL for a stored name.
	URL(name string) string
	// Files lists the names of every stored artifact.
	Files() ([]string, error)
	// LastModified reports when the named artifact was last written.
	LastModified(name string) (time.Time, error)
	// Delete removes the named artifact. Deleting a name that is
	// already gone is not an error.
	Delete(name string) error
}
