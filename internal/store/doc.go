// Package store defines the persistence interfaces for the application's
// entities, the transactional unit of work that scopes every request's
// database writes, and the sentinel errors shared by all store
// implementations.
package store
