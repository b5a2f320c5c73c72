// Package parcel models the customer-facing shape of a shipment before it
// becomes an order: the parcel type, the sender and receiver party details,
// and the mutable Draft bound to the intake form.
//
// A Draft is filled field by field by user input and validated as a whole at
// submission time, including the referential invariant that each party's
// service center belongs to the party's chosen region. Once an order is
// materialized from a draft the order keeps its own snapshot; later edits to
// the draft never leak into an existing order.
package parcel
