package storage

// Tx is the scoped transaction capability handed to the service for the
// duration of a class registration. It is exclusively owned by the request
// that opened it; *sql.Tx satisfies it directly.
type Tx interface {
	Commit() error
	Rollback() error
}
