package entity

// PlayerKind names the agent that plays a side.
type PlayerKind string

const (
	KindHuman    PlayerKind = "human"
	KindComputer PlayerKind = "computer"
	KindRandom   PlayerKind = "random"
)

func (that PlayerKind) IsValid() bool {
	switch that {
	case KindHuman, KindComputer, KindRandom:
		return true
	default:
		return false
	}
}
