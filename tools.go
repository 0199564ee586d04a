//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq (mocks in *_mock_test.go next to the consumer interface)
// - github.com/pressly/goose/v3/cmd/goose (migrations/, also wrapped by boardctl migrate)
