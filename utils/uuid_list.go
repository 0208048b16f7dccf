package utils

import "github.com/google/uuid"

// ParseUUIDList converts the raw id strings of a bulk request, silently
// dropping anything that is not a UUID. Bulk operations skip invalid ids
// rather than failing the whole batch.
func ParseUUIDList(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
