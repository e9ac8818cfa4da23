// Package report implements the reporting and aggregation engine: visibility
// scoping, filter composition, grouped financial breakdowns, and the logical
// table projections handed to the spreadsheet encoder. The engine is pure and
// synchronous; it computes over an immutable snapshot fetched once by the
// caller and never touches storage itself.
package report

import (
	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

// Snapshot is the record set one report computation works over. The caller
// fetches it before invoking the engine; concurrent computations may share it
// because the engine never mutates it.
type Snapshot struct {
	Receipts []*entity.Receipt
	Tags     []*entity.Tag
	Users    []*entity.User
}

// UserByID indexes the snapshot's users for uploader resolution.
func (s *Snapshot) UserByID() map[int64]*entity.User {
	idx := make(map[int64]*entity.User, len(s.Users))
	for _, u := range s.Users {
		idx[u.ID] = u
	}
	return idx
}
