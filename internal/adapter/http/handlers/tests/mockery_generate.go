package tests

// Regenerates obraServiceMock from ports.ObraService into the file the handler
// tests use.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name ObraService --structname obraServiceMock --dir ../../../../core/ports --output . --outpkg tests --filename obra_service_mock_test.go
