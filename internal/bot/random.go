package bot

import (
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Random plays a uniformly random empty cell.
type Random struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandom uses rnd as its only source of randomness; *rand.Rand is not safe
// for concurrent use, so access is serialized.
func NewRandom(rnd *rand.Rand) *Random {
	return &Random{rnd: rnd}
}

// NewSeededRandom is a shortcut for NewRandom(rand.New(rand.NewSource(seed))).
func NewSeededRandom(seed int64) *Random {
	return NewRandom(rand.New(rand.NewSource(seed))) //nolint: gosec // it's ok
}

func (that *Random) SelectMove(board entity.Board, mark entity.Mark) (int, error) {
	if err := checkPlayable(board, mark); err != nil {
		return NoMove, err
	}

	availableCells := board.EmptyCells()

	that.mu.Lock()
	chosen := availableCells[that.rnd.Intn(len(availableCells))]
	that.mu.Unlock()

	return chosen, nil
}
