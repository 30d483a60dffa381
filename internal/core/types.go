// Package core defines the dock-worker robot domain: the entity schema,
// the world state, and the move/pickup/putdown transition rules that the
// search algorithms in internal/algo explore.
package core

// RobotID is a unique robot identifier.
type RobotID int

// DockID is a unique dock identifier.
type DockID int

// ContainerID is a unique container identifier.
type ContainerID int

// PileID is a unique pile identifier.
type PileID int

// ActionKind classifies the three ground operations.
type ActionKind int

const (
	Move    ActionKind = iota // Robot moves between adjacent docks
	Pickup                    // Robot lifts the top container off a pile
	Putdown                   // Robot stacks its last-loaded container onto a pile
)

func (k ActionKind) String() string {
	return [...]string{"move", "pickup", "putdown"}[k]
}

// LocKind tags the two places a container can be.
type LocKind int

const (
	LocPile  LocKind = iota // In a pile at some position
	LocRobot                // In a robot's load slot
)

// ContainerLocation is the single source of truth for where a container
// sits. Exactly one variant is meaningful at a time; the tag decides which.
type ContainerLocation struct {
	Kind LocKind

	// Valid when Kind == LocPile.
	Pile     PileID
	Position int // 1 = bottom of the pile

	// Valid when Kind == LocRobot.
	Robot RobotID
	Slot  int // 1 = first-filled slot
}

// PileLoc places a container at a 1-based position in a pile.
func PileLoc(p PileID, position int) ContainerLocation {
	return ContainerLocation{Kind: LocPile, Pile: p, Position: position}
}

// RobotLoc places a container in a robot's 1-based load slot.
func RobotLoc(r RobotID, slot int) ContainerLocation {
	return ContainerLocation{Kind: LocRobot, Robot: r, Slot: slot}
}

// OnRobot reports whether the location is aboard the given robot.
func (l ContainerLocation) OnRobot(r RobotID) bool {
	return l.Kind == LocRobot && l.Robot == r
}

// InPile reports whether the location is inside the given pile.
func (l ContainerLocation) InPile(p PileID) bool {
	return l.Kind == LocPile && l.Pile == p
}
