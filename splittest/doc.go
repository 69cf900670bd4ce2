/*
Package splittest provides mocks and helpers for testing code that executes
splits.
*/
package splittest
