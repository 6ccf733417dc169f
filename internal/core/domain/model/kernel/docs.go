// Package kernel contains shared value objects used across the domain model.
// These types carry no business rules of their own; they exist to give
// aggregates and commands strongly typed, validated building blocks.
package kernel
