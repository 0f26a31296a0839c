// Package model defines the data structures used by the railwatch board,
// including incidents, the incident feed, and the categorical codes they carry.
package model

// Network identifies the rail subnetwork an incident belongs to
type Network string

const (
	// NetworkCercaniasMadrid is the Madrid commuter rail network.
	NetworkCercaniasMadrid Network = "CERCANIAS_MADRID"
	// NetworkCercaniasValencia is the Valencia commuter rail network.
	NetworkCercaniasValencia Network = "CERCANIAS_VALENCIA"
	// NetworkRodaliesCatalunya is the Catalan commuter rail network.
	NetworkRodaliesCatalunya Network = "RODALIES_CATALUNYA"
	// NetworkAltaVelocidad is the high-speed network.
	NetworkAltaVelocidad Network = "ALTA_VELOCIDAD"
	// NetworkMediaDistancia is the regional (medium distance) network.
	NetworkMediaDistancia Network = "MEDIA_DISTANCIA"
	// NetworkAnchoMetrico is the narrow gauge network.
	NetworkAnchoMetrico Network = "ANCHO_METRICO"
	// NetworkOtros groups incidents the producer could not classify.
	NetworkOtros Network = "OTROS"
)

// Networks lists the known network codes in display order
var Networks = []Network{
	NetworkCercaniasMadrid,
	NetworkCercaniasValencia,
	NetworkRodaliesCatalunya,
	NetworkAltaVelocidad,
	NetworkMediaDistancia,
	NetworkAnchoMetrico,
	NetworkOtros,
}

var networkNames = map[Network]string{
	NetworkCercaniasMadrid:   "Cercanías Madrid",
	NetworkCercaniasValencia: "Cercanías Valencia",
	NetworkRodaliesCatalunya: "Rodalies Catalunya",
	NetworkAltaVelocidad:     "Alta Velocidad",
	NetworkMediaDistancia:    "Media Distancia",
	NetworkAnchoMetrico:      "Ancho Métrico",
	NetworkOtros:             "Otros",
}

// Label returns the human readable network name. Unknown codes are returned verbatim.
func (n Network) Label() string {
	if name, ok := networkNames[n]; ok {
		return name
	}
	return string(n)
}
