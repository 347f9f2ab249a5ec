// Package service implements the application's use cases on top of the store
// layer. Every exported operation opens one transaction, threads
// transaction-bound stores through its repository calls, and commits or rolls
// back before returning, so each inbound request maps to exactly one unit of
// work.
package service
