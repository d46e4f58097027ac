package interaction

// State of the map/panel coordination.
type State int

const (
	// Idle: no marker selected, panel hidden.
	Idle State = iota
	// Selected: a marker is tapped, panel expanded, camera on the marker.
	Selected
	// PanelHidden: the user dismissed the panel with a background tap.
	PanelHidden
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	case PanelHidden:
		return "panel_hidden"
	default:
		return "unknown"
	}
}

// Event is one discrete user or host occurrence.
type Event int

const (
	MarkerTapped Event = iota
	BackgroundTapped
	CatalogReloaded
)

// Machine holds the current interaction state. Events are delivered one
// at a time by the host; there is no internal locking here, the owning
// controller serializes.
type Machine struct {
	state State
}

func (m *Machine) State() State {
	return m.state
}

// Apply advances the state. Tapping a marker always selects it, including
// re-selecting from Selected with a different marker. A background tap
// hides the panel but does not touch the camera. A catalog reload drops
// everything back to Idle.
func (m *Machine) Apply(ev Event) State {
	switch ev {
	case MarkerTapped:
		m.state = Selected
	case BackgroundTapped:
		if m.state != Idle {
			m.state = PanelHidden
		}
	case CatalogReloaded:
		m.state = Idle
	}
	return m.state
}
