package graphql

import (
	"github.com/graphql-go/graphql"
)

// Output object types. Field values resolve from the domain structs via
// the engine's default resolver, which matches field names
// case-insensitively.

var coordinatesType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Coordinates",
	Fields: graphql.Fields{
		"lat": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"lng": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var weatherType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Weather",
	Fields: graphql.Fields{
		"temperature":   &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"humidity":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"windSpeed":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"windDirection": &graphql.Field{Type: graphql.Int},
		"precipitation": &graphql.Field{Type: graphql.Float},
		"season":        &graphql.Field{Type: graphql.String},
	},
})

var environmentalFactorsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "EnvironmentalFactors",
	Fields: graphql.Fields{
		"droughtIndex":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"vegetationType":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"vegetationDryness":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"humanActivityIndex": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"regionalFactor":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var initialFireType = graphql.NewObject(graphql.ObjectConfig{
	Name: "InitialFire",
	Fields: graphql.Fields{
		"lat":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"lng":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"intensity": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var simulationParametersType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SimulationParameters",
	Fields: graphql.Fields{
		"temperature":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"humidity":        &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"windSpeed":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"windDirection":   &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"simulationSpeed": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var fireRiskDataType = graphql.NewObject(graphql.ObjectConfig{
	Name: "FireRiskData",
	Fields: graphql.Fields{
		"id":                   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"sourceId":             &graphql.Field{Type: graphql.String},
		"timestamp":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"location":             &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"duration":             &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":                 &graphql.Field{Type: graphql.String},
		"volunteers":           &graphql.Field{Type: graphql.Int},
		"volunteerName":        &graphql.Field{Type: graphql.String},
		"coordinates":          &graphql.Field{Type: graphql.NewNonNull(coordinatesType)},
		"weather":              &graphql.Field{Type: graphql.NewNonNull(weatherType)},
		"environmentalFactors": &graphql.Field{Type: graphql.NewNonNull(environmentalFactorsType)},
		"fireRisk":             &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"fireDetected":         &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"initialFires":         &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(initialFireType))},
		"parameters":           &graphql.Field{Type: simulationParametersType},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"nombre":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"apellido": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"ci":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"telefono": &graphql.Field{Type: graphql.String},
		"isAdmin":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var authPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthPayload",
	Fields: graphql.Fields{
		"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
	},
})

// Input object types.

var coordinatesInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CoordinatesInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"lat": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"lng": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var weatherInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "WeatherInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"temperature":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"humidity":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"windSpeed":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"windDirection": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"precipitation": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"season":        &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var initialFireInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "InitialFireInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"lat":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"lng":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"intensity": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var simulationParametersInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SimulationParametersInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"temperature":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"humidity":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"windSpeed":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"windDirection":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"simulationSpeed": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var saveSimulationInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SaveSimulationInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"timestamp":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"location":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"duration":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"name":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"volunteers":    &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"volunteerName": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"coordinates":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(coordinatesInputType)},
		"weather":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(weatherInputType)},
		"fireRisk":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"fireDetected":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Boolean)},
		"initialFires":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(initialFireInputType)))},
		"parameters":    &graphql.InputObjectFieldConfig{Type: simulationParametersInputType},
	},
})

var registerInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "RegisterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"apellido": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"ci":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"telefono": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var updateUserInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"apellido": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"telefono": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})
