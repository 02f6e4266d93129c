package risk

// Gazetteer of named sites in the Chiquitos province used for synthetic
// data. Regional factors reflect protection status and human pressure.

// protectedMarker identifies the national park, which gets cooler and
// wetter synthetic weather than the rest of the province.
const protectedMarker = "Noel Kempff"

var locations = []string{
	"Parque Nacional Noel Kempff Mercado",
	"Reserva Natural Valle de Tucavaca",
	"Santiago de Chiquitos",
	"San José de Chiquitos",
	"Roboré",
	"Chochis",
	"Agua Dulce",
	"Pampa Grande",
	"San Juan de Taperas",
	"Santo Corazón",
}

var seasons = []string{
	"época seca",
	"época de lluvias",
	"transición seca-lluvia",
	"transición lluvia-seca",
}

var vegetationTypes = []string{
	"bosque chiquitano seco",
	"cerrado",
	"sabana arbustiva",
	"bosque ribereño",
	"palmar",
}

var regionalFactors = map[string]float64{
	"Parque Nacional Noel Kempff Mercado": 0.7,
	"Reserva Natural Valle de Tucavaca":   0.8,
	"Santiago de Chiquitos":               1.1,
	"San José de Chiquitos":               1.2,
	"Roboré":                              1.15,
	"Chochis":                             1.0,
	"Agua Dulce":                          1.05,
	"Pampa Grande":                        1.1,
	"San Juan de Taperas":                 1.0,
	"Santo Corazón":                       1.05,
}

// RegionalFactor returns the risk multiplier for a gazetteer location,
// or 1.0 for locations not listed.
func RegionalFactor(location string) float64 {
	if f, ok := regionalFactors[location]; ok {
		return f
	}
	return 1.0
}
