// Package contact relays contact form submissions to the studio by email.
//
// A submission is validated, then two messages are sent in order: a
// notification to the operator and a confirmation back to the submitter. The
// second send only happens after the first succeeded. Nothing is retried or
// rolled back; Submit reports which of the two messages left the building so
// callers can tell "nothing sent" from "operator notified only".
package contact
