// Package gen holds the code generated from api/openapi.yaml.
//
// Run go generate ./... after changing the API description.
package gen

//go:generate go run github.com/ogen-go/ogen/cmd/ogen --target oas --package oas --clean ../api/openapi.yaml
