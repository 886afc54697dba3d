package job

import (
	"hash/fnv"
	"strconv"
)

// KeyBucket maps a session key to one of 32 stable metric label values, so
// per-key metrics stay low cardinality.
func KeyBucket(key string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return strconv.Itoa(int(h.Sum32() % 32))
}
