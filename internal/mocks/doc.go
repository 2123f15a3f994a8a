// Package mocks provides hand-rolled mock implementations of the service
// interfaces for use in tests.
package mocks
