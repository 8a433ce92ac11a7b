package domain

// InsertAck is the store acknowledgement of a single insert.
// swagger:model InsertAck
type InsertAck struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateAck is the store acknowledgement of a single-document update.
// swagger:model UpdateAck
type UpdateAck struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteAck is the store acknowledgement of a single-document delete.
// swagger:model DeleteAck
type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
