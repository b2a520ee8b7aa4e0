package types

// Status is a type for the lifecycle status of a record in the roster.
// This is used to determine whether a record should be included in queries.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
	StatusDeleted  Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}
