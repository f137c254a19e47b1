package ports

// Logger defines the interface for diagnostics logging. Audit results never
// go through it; reporters own the result streams.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
