package badger

import (
	"fmt"

	"github.com/mike-arbuzov/findmyangel-backend/core"
)

// Key prefixes for different data types
const (
	profileRecordPrefix = "prorec"
	profileURLPrefix    = "prourl"
)

// makeProfileKey generates a key for a profile record by ID.
func makeProfileKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", profileRecordPrefix, id))
}

// makeProfileURLKey generates a secondary-index key for lookup by normalized
// LinkedIn URL. URLs sort lexicographically, which gives All/List a stable,
// deterministic order.
func makeProfileURLKey(linkedInURL string) []byte {
	return []byte(profileURLPrefix + ":" + linkedInURL)
}
