package id

import "github.com/rs/xid"

// GetXid returns a 20 character, k-sortable globally unique id.
func GetXid() string {
	return xid.New().String()
}
