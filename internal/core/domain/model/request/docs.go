// Package request contains the domain model for vehicle delivery and collection
// requests. A Request is the aggregate root covering one pickup-or-delivery
// transaction for a vehicle: a client either collects the vehicle from the
// service yard (pickup) or has it transported to an address (delivery).
//
// The package models:
//   - the Request aggregate and its lifecycle transitions
//   - the Status state machine (requested through delivered)
//   - the Kind discriminant between pickup and delivery requests
//   - Window, the concrete start/end pair scheduled for a given calendar date
//   - Event, the append-only audit record written on every transition
//
// All invariants are enforced by the aggregate and its value objects; callers
// in the application layer only orchestrate repository and notification ports.
package request
