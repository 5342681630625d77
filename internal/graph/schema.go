// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package graph exposes the portal services as a GraphQL API.
//
// Resolvers are thin: they translate arguments into models, call the
// matching service and convert errors with publicError. Authorization and
// validation live in the service layer, so every field enforces them
// regardless of how it is reached.
package graph

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/internal/utils"
	graphql "github.com/graph-gophers/graphql-go"
)

// MaxDepth limits the nesting of incoming queries.
const MaxDepth = 8

//go:embed schema.graphql
var schemaSDL string

// Schemas holds the executable schema and a copy without the mutation root,
// used for requests that must not change state (GET).
type Schemas struct {
	Full     *graphql.Schema
	ReadOnly *graphql.Schema
}

// NewSchema parses the embedded schema and binds it to the services.
func NewSchema(services *service.Services, log *logger.Logger) (*graphql.Schema, error) {
	return parseSchema(schemaSDL, services, log)
}

// NewSchemas builds both the full and the read-only schema.
func NewSchemas(services *service.Services, log *logger.Logger) (Schemas, error) {
	full, err := parseSchema(schemaSDL, services, log)
	if err != nil {
		return Schemas{}, err
	}
	readOnly, err := parseSchema(strings.Replace(schemaSDL, mutationRoot, "", 1), services, log)
	if err != nil {
		return Schemas{}, err
	}
	return Schemas{Full: full, ReadOnly: readOnly}, nil
}

const mutationRoot = "  mutation: Mutation\n"

func parseSchema(sdl string, services *service.Services, log *logger.Logger) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(sdl, &Resolver{services: services},
		graphql.MaxDepth(MaxDepth),
		graphql.Logger(panicLogger{log: log}),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing graphql schema: %w", err)
	}
	return schema, nil
}

// panicLogger routes resolver panics to the request logger.
type panicLogger struct {
	log *logger.Logger
}

func (l panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.log.Error().
		Str("trace_id", utils.TraceIDFromContext(ctx)).
		Interface("panic", value).
		Msg("graphql resolver panicked")
}
