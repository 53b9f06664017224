package lib

type nodeParams struct {
	maxPoints    int
	table        PowerTable
	defaultPower int
}

type NodeOption interface {
	apply(params *nodeParams)
}

// NodeMaxPoints - capacity of the sample buffer, self node included.
type NodeMaxPoints int

func (n NodeMaxPoints) apply(params *nodeParams) {
	params.maxPoints = int(n)
}

// NodePowerTable - calibration of the radio.
type NodePowerTable PowerTable

func (n NodePowerTable) apply(params *nodeParams) {
	params.table = PowerTable(n)
}

// NodeDefaultPower - coded power used when no specific power could be
// computed.
type NodeDefaultPower int

func (n NodeDefaultPower) apply(params *nodeParams) {
	params.defaultPower = int(n)
}
