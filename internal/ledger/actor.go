package ledger

import (
	"errors"
	"fmt"
)

// Actor identifies a party that can own time on a case ledger.
type Actor string

const (
	ActorDCA      Actor = "DCA"
	ActorFedEx    Actor = "FedEx"
	ActorCustomer Actor = "Customer"
)

// ErrUnknownActor is returned by ParseActor for values outside the closed set.
var ErrUnknownActor = errors.New("unknown actor")

// Actors returns every actor in canonical order.
func Actors() []Actor {
	return []Actor{ActorDCA, ActorFedEx, ActorCustomer}
}

// ParseActor converts the wire form of an actor. Matching is exact.
func ParseActor(s string) (Actor, error) {
	switch a := Actor(s); a {
	case ActorDCA, ActorFedEx, ActorCustomer:
		return a, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownActor, s)
}

// Valid reports whether a is one of the known actors.
func (a Actor) Valid() bool {
	_, err := ParseActor(string(a))
	return err == nil
}

func (a Actor) String() string { return string(a) }
