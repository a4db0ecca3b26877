package model

// Event is anything the messaging gateway can publish; the id becomes the
// kafka message key.
type Event interface {
	GetId() string
}
