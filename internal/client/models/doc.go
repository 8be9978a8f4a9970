// Package models defines the entities served by the price tracker API:
// tracked items, their price history, monitored keywords and ad-hoc search
// listings.
//
// The client never builds these locally. Each type decodes from the wire
// shape and reports malformed payloads through Validate, which the gateway
// turns into a decode failure.
package models
