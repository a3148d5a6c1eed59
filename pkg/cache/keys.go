package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ResultKeyOpts identifies the input of a sort.
// Exactly one of LightCount and Row is expected to be set.
type ResultKeyOpts struct {
	LightCount int    `json:"lights,omitempty"`
	Row        string `json:"row,omitempty"`
	Trace      bool   `json:"trace,omitempty"`
}

// ArtifactKeyOpts identifies a rendered output of a sort result.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer generates cache keys.
type Keyer interface {
	// ResultKey returns the key for a sort result.
	ResultKey(algorithm string, opts ResultKeyOpts) string

	// ArtifactKey returns the key for a rendered artifact of a result.
	ArtifactKey(resultHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces keys of the form "<kind>:<algorithm>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey returns the key for a sort result.
func (DefaultKeyer) ResultKey(algorithm string, opts ResultKeyOpts) string {
	return hashKey("result:"+algorithm, opts)
}

// ArtifactKey returns the key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(resultHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, resultHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
