// Package mocks holds testify mocks for the interfaces listed in .mockery.yaml,
// laid out the way mockery writes them.
package mocks
