/*
Package pausetest provides mocks and helpers that make testing handlers,
decorators and the ledger host easier.
*/
package pausetest
