package node

import (
	"sync"

	"github.com/google/uuid"
)

// Info identifies the running server instance. It is attached to log
// records and streamed review events so multiple replicas can be told
// apart.
type Info struct {
	ID      string
	Version string
	Commit  string
}

// Set at build time via -ldflags.
var Version = "development"
var Commit = "unknown"

var instance = sync.OnceValue(func() Info {
	return Info{
		ID:      uuid.New().String(),
		Version: Version,
		Commit:  Commit,
	}
})

// Instance returns the identity of this process. The ID is generated
// once per process.
func Instance() Info {
	return instance()
}
