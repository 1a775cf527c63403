// Package postgres provides the PostgreSQL implementation of the data
// storage interfaces defined in the internal/store package. It handles
// query execution, error translation from driver errors to store sentinel
// errors, and data mapping between domain entities and database records.
package postgres
