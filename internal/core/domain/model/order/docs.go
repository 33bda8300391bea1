// Package order implements the Order aggregate root and its lifecycle.
//
// The aggregate owns a set of parcels (unique by parcel id), an optional
// vehicle assignment with delivery date and price, and a status that only
// advances through the transitions defined by the Status state machine.
// Every successful mutation records exactly the domain event(s) describing
// the change; invalid requests fail without touching any field or event.
//
// The recorded events are not published directly. They stay pending on the
// aggregate until the outbox capture pipeline persists them, in the same
// transaction as the aggregate's state change, and clears them.
package order
