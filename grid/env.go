package grid

import (
	"fmt"

	"github.com/optrl/smdp/types"
)

// Primitive action ids of the grid environment.
const (
	Nothing = iota
	Up
	Down
	Left
	Right
	Next
	numActions
)

type Position struct {
	I int
	J int
	K int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.I, p.J, p.K)
}

func (p Position) Eq(other Position) bool {
	return p.I == other.I && p.J == other.J && p.K == other.K
}

// GridEnvironment is a stack of Height x Width grids. Moving Next at
// the top-right cell of a grid climbs to the next one; reaching the
// top-right cell of the last grid ends the episode with a bonus reward.
// Every other primitive step costs one unit of reward.
type GridEnvironment struct {
	Height int
	Width  int
	Grids  int
	CurPos Position
}

var _ types.Environment = &GridEnvironment{}

func NewGridEnvironment(height, width, grids int) *GridEnvironment {
	return &GridEnvironment{
		Height: height,
		Width:  width,
		Grids:  grids,
		CurPos: Position{0, 0, 0},
	}
}

func (g *GridEnvironment) ActionSpace() types.ActionSpace {
	return types.ActionSpace{Discrete: true, N: numActions}
}

func (g *GridEnvironment) Reset(seed int64) (interface{}, types.Info, error) {
	g.CurPos = Position{0, 0, 0}
	return g.CurPos, types.Info{}, nil
}

func (g *GridEnvironment) Step(action interface{}) (types.StepOutcome, error) {
	move, ok := action.(int)
	if !ok || move < 0 || move >= numActions {
		return types.StepOutcome{}, fmt.Errorf("grid: unknown action %v", action)
	}

	newPos := g.CurPos
	switch move {
	case Nothing:
	case Up:
		newPos.I = min(g.Height-1, g.CurPos.I+1)
	case Down:
		newPos.I = max(0, g.CurPos.I-1)
	case Left:
		newPos.J = max(0, g.CurPos.J-1)
	case Right:
		newPos.J = min(g.Width-1, g.CurPos.J+1)
	case Next:
		if g.CurPos.I == g.Height-1 && g.CurPos.J == g.Width-1 && g.CurPos.K < g.Grids-1 {
			newPos = Position{0, 0, g.CurPos.K + 1}
		}
	}
	g.CurPos = newPos

	reward := -1.0
	terminated := false
	if newPos.K == g.Grids-1 && newPos.I == g.Height-1 && newPos.J == g.Width-1 {
		reward = 100.0
		terminated = true
	}
	return types.StepOutcome{
		Observation: newPos,
		Reward:      reward,
		Terminated:  terminated,
		Info:        types.Info{},
	}, nil
}

// Availability reports the movements legal at a position: moves that
// would push against a wall are not offered.
func Availability(obs interface{}) ([]int, error) {
	pos, ok := obs.(Position)
	if !ok {
		return nil, fmt.Errorf("grid: unexpected observation %T", obs)
	}
	legal := []int{Nothing, Next, Up, Right}
	if pos.I > 0 {
		legal = append(legal, Down)
	}
	if pos.J > 0 {
		legal = append(legal, Left)
	}
	return legal, nil
}
