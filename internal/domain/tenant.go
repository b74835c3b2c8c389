package domain

import "strconv"

// TenantID identifies the guild that owns a record. Tenants have no table of
// their own: a tenant exists as soon as some row carries its id.
type TenantID int64

func (id TenantID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseTenantID parses a decimal guild id.
func ParseTenantID(s string) (TenantID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, NewValidationError("guild_id", "must be a 64-bit integer")
	}
	return TenantID(v), nil
}
