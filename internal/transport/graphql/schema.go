// Package graphql exposes the service API as a GraphQL schema.
package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/graphql-go/graphql"

	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
	authservice "github.com/firewatch-bo/chiquitos-backend/internal/service/auth"
	"github.com/firewatch-bo/chiquitos-backend/internal/service/record"
	userservice "github.com/firewatch-bo/chiquitos-backend/internal/service/user"
	"github.com/firewatch-bo/chiquitos-backend/internal/transport/middleware"
)

// recordService defines what the schema needs from the record service.
type recordService interface {
	List(ctx context.Context, count int) []domain.FireRiskRecord
	ListByLocation(ctx context.Context, location string, count int) []domain.FireRiskRecord
	HighRisk(ctx context.Context, threshold float64, count int) []domain.FireRiskRecord
	Stored(ctx context.Context, count int) ([]domain.FireRiskRecord, error)
	SaveSimulation(ctx context.Context, input record.SaveSimulationInput) (*domain.FireRiskRecord, error)
	Rename(ctx context.Context, id, name string) (*domain.FireRiskRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// authService defines what the schema needs from the auth service.
type authService interface {
	Login(ctx context.Context, ci, password string) (*authservice.Result, error)
	Register(ctx context.Context, in userservice.CreateInput) (*authservice.Result, error)
}

// userService defines what the schema needs from the user service.
type userService interface {
	Create(ctx context.Context, in userservice.CreateInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, in userservice.UpdateInput) (*domain.User, error)
	MakeAdmin(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Deps are the services the schema resolves against.
type Deps struct {
	Log     *slog.Logger
	Records recordService
	Auth    authService
	Users   userService
}

// NewSchema builds the executable schema.
func NewSchema(deps Deps) (graphql.Schema, error) {
	r := &resolver{
		log:     deps.Log.With("transport", "graphql"),
		records: deps.Records,
		auth:    deps.Auth,
		users:   deps.Users,
	}

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.queryType(),
		Mutation: r.mutationType(),
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("graphql: build schema: %w", err)
	}

	return schema, nil
}

type resolver struct {
	log     *slog.Logger
	records recordService
	auth    authService
	users   userService
}

func (r *resolver) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getAllFireRiskData": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(fireRiskDataType)),
				Args: graphql.FieldConfigArgument{
					"count": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.records.List(p.Context, intArg(p, "count", 10)), nil
				},
			},
			"getFireRiskDataByLocation": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(fireRiskDataType)),
				Args: graphql.FieldConfigArgument{
					"location": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"count":    &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					location, _ := p.Args["location"].(string)
					return r.records.ListByLocation(p.Context, location, intArg(p, "count", 10)), nil
				},
			},
			"getHighRiskFireData": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(fireRiskDataType)),
				Args: graphql.FieldConfigArgument{
					"threshold": &graphql.ArgumentConfig{Type: graphql.Float, DefaultValue: 75.0},
					"count":     &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.records.HighRisk(p.Context, floatArg(p, "threshold", 75), intArg(p, "count", 10)), nil
				},
			},
			"getChiquitosFireRiskData": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(fireRiskDataType)),
				Args: graphql.FieldConfigArgument{
					"count": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					records, err := r.records.Stored(p.Context, intArg(p, "count", 10))
					if err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					return records, nil
				},
			},
			"getUsers": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(userType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := middleware.RequireAdmin(p.Context); err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					users, err := r.users.List(p.Context)
					if err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					return users, nil
				},
			},
			"getUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := middleware.RequireAdmin(p.Context); err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					id, _ := p.Args["id"].(string)
					u, err := r.users.Get(p.Context, id)
					if err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					return u, nil
				},
			},
		},
	})
}

func (r *resolver) mutationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"saveSimulation": &graphql.Field{
				Type: graphql.NewNonNull(fireRiskDataType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(saveSimulationInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := middleware.RequireAuth(p.Context); err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					var in record.SaveSimulationInput
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					saved, err := r.records.SaveSimulation(p.Context, in)
					if err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					return saved, nil
				},
			},
			"updateFireRiskName": &graphql.Field{
				Type: graphql.NewNonNull(fireRiskDataType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := middleware.RequireAuth(p.Context); err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					id, _ := p.Args["id"].(string)
					name, _ := p.Args["name"].(string)
					updated, err := r.records.Rename(p.Context, id, name)
					if err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					return updated, nil
				},
			},
			"deleteFireRiskData": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := middleware.RequireAuth(p.Context); err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					id, _ := p.Args["id"].(string)
					deleted, err := r.records.Delete(p.Context, id)
					if err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					return deleted, nil
				},
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"ci":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					ci, _ := p.Args["ci"].(string)
					password, _ := p.Args["password"].(string)
					res, err := r.auth.Login(p.Context, ci, password)
					if err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					return res, nil
				},
			},
			"register": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(registerInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var in userservice.CreateInput
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					res, err := r.auth.Register(p.Context, in)
					if err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					return res, nil
				},
			},
			"createUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(registerInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := middleware.RequireAdmin(p.Context); err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					var in userservice.CreateInput
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					u, err := r.users.Create(p.Context, in)
					if err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					return u, nil
				},
			},
			"updateUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateUserInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := middleware.RequireAdmin(p.Context); err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					var in userservice.UpdateInput
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					id, _ := p.Args["id"].(string)
					u, err := r.users.Update(p.Context, id, in)
					if err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					return u, nil
				},
			},
			"deleteUser": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := middleware.RequireAdmin(p.Context); err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					id, _ := p.Args["id"].(string)
					deleted, err := r.users.Delete(p.Context, id)
					if err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					return deleted, nil
				},
			},
			"makeAdmin": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := middleware.RequireAdmin(p.Context); err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					id, _ := p.Args["id"].(string)
					u, err := r.users.MakeAdmin(p.Context, id)
					if err != nil {
						return nil, presentError(p.Context, r.log, err)
					}
					return u, nil
				},
			},
		},
	})
}

// decodeInput converts a coerced argument map into a typed input struct.
func decodeInput(arg interface{}, dst interface{}) error {
	raw, err := json.Marshal(arg)
	if err != nil {
		return fmt.Errorf("graphql: encode input: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("graphql: decode input: %w", err)
	}
	return nil
}

func intArg(p graphql.ResolveParams, name string, fallback int) int {
	if v, ok := p.Args[name].(int); ok {
		return v
	}
	return fallback
}

func floatArg(p graphql.ResolveParams, name string, fallback float64) float64 {
	switch v := p.Args[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return fallback
}
