package ctdf

type TransportType string

const (
	TransportTypeBus     TransportType = "Bus"
	TransportTypeTram    TransportType = "Tram"
	TransportTypeRail    TransportType = "Rail"
	TransportTypeMetro   TransportType = "Metro"
	TransportTypeFerry   TransportType = "Ferry"
	TransportTypeUnknown TransportType = "UNKNOWN"
)

var iconTransportTypes = map[string]TransportType{
	"bus":      TransportTypeBus,
	"tram":     TransportTypeTram,
	"sbahn":    TransportTypeRail,
	"regional": TransportTypeRail,
	"ice":      TransportTypeRail,
	"ubahn":    TransportTypeMetro,
	"ferry":    TransportTypeFerry,
}

// TransportTypeForIcon maps a category icon from the transforms tables to its transport type
func TransportTypeForIcon(icon string) TransportType {
	if transportType, ok := iconTransportTypes[icon]; ok {
		return transportType
	}

	return TransportTypeUnknown
}
