package entity

// Turn says whose move it is during play and during search.
type Turn uint8

const (
	HumanTurn Turn = iota
	ComputerTurn
)

// Mark returns the mark placed by the side to move.
func (that Turn) Mark() Mark {
	if that == ComputerTurn {
		return Computer
	}
	return Human
}

func (that Turn) Next() Turn {
	if that == ComputerTurn {
		return HumanTurn
	}
	return ComputerTurn
}

func (that Turn) String() string {
	if that == ComputerTurn {
		return "computer"
	}
	return "human"
}
