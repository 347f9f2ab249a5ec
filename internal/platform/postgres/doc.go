// Package postgres contains PostgreSQL implementations of the store interfaces.
package postgres
