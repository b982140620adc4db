package legacy

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// Entity-type prefixes for derived identifiers.
const (
	IDPrefixProject     = "project"
	IDPrefixEmployee    = "employee"
	IDPrefixPublication = "publication"
)

const derivedIDLength = 12

// DeriveID synthesizes a stable identifier for a legacy record that carries no
// natural key: prefix + "-" + the first 12 hex characters of SHA-1 over the
// "-"-joined fields.
//
// The field tuples are fixed per entity type: projects (title, lead, region),
// employees (name, region), publications (title). Overlay entries are keyed by
// these ids across process restarts of the legacy source, so neither the
// tuples nor the hash may change.
func DeriveID(prefix string, fields ...string) string {
	sum := sha1.Sum([]byte(strings.Join(fields, "-")))
	return prefix + "-" + hex.EncodeToString(sum[:])[:derivedIDLength]
}
