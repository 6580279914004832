package issue

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns an identity of the issue which is stable across runs.
// Line and column numbers aren't part of it, so unrelated edits above an
// issue don't change its fingerprint.
func Fingerprint(i Issue) string {
	h := sha256.New()
	for _, s := range []string{
		i.Origin,
		i.Type,
		i.Category,
		i.FileName,
		i.PackageName,
		i.ModuleName,
		strings.Join(strings.Fields(i.Message), " "),
	} {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:32]
}
