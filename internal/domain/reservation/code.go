package reservation

import (
	"strings"

	"github.com/google/uuid"
)

// CodePrefix starts every human-shareable booking code.
const CodePrefix = "AFR-"

// NewCode generates a reservation code: "AFR-" plus the first six
// characters of a fresh random identifier, uppercased. There is no
// uniqueness retry; a collision is possible but left unhandled given the
// expected booking volume.
func NewCode() string {
	return CodePrefix + strings.ToUpper(uuid.NewString()[:6])
}
