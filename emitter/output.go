package emitter

import "github.com/minio/highwayhash"

// fingerprintKey seeds content fingerprints; highwayhash requires exactly 32 bytes
var fingerprintKey = []byte("ngtooling-generated-index-files!")

// Output represents one generated file
type Output struct {
	Path    string
	Content []byte
}

// Fingerprint identifies the rendered content
func (o *Output) Fingerprint() uint64 {
	return fingerprint(o.Content)
}

// Matches reports whether current, typically the file found at Path, has the rendered content
func (o *Output) Matches(current []byte) bool {
	return len(current) == len(o.Content) && fingerprint(current) == o.Fingerprint()
}

func fingerprint(data []byte) uint64 {
	return highwayhash.Sum64(data, fingerprintKey)
}
