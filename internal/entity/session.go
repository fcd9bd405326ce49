package entity

import "maps"

const aiPlayerName = "AI"

// Score counts wins per mark. Draws are not recorded.
type Score map[Mark]int

// Session is one player-facing game: the board, whose turn it is and the
// running score across rounds.
type Session struct {
	ID          string          `json:"id"`
	Board       Board           `json:"board"`
	Turn        Mark            `json:"turn"`
	Active      bool            `json:"active"`
	Winner      Mark            `json:"winner,omitempty"`
	Draw        bool            `json:"draw,omitempty"`
	WinningLine []int           `json:"winning_line,omitempty"`
	Mode        Mode            `json:"mode"`
	AIMark      Mark            `json:"ai_mark,omitempty"`
	Players     map[Mark]string `json:"players"`
	Scores      Score           `json:"scores"`
	Round       int             `json:"round"`
}

func NewScore() Score {
	return Score{PlayerX: 0, PlayerO: 0}
}

// NewSession returns an active session with an empty board and X to move.
// aiMark is ignored in two-player mode.
func NewSession(id string, mode Mode, aiMark Mark, names map[Mark]string) *Session {
	session := &Session{
		ID:      id,
		Turn:    PlayerX,
		Active:  true,
		Mode:    mode,
		Players: map[Mark]string{PlayerX: "Player X", PlayerO: "Player O"},
		Scores:  NewScore(),
		Round:   1,
	}

	for mark, name := range names {
		if mark.IsPlayer() && name != "" {
			session.Players[mark] = name
		}
	}

	if mode.WithAI() {
		if !aiMark.IsPlayer() {
			aiMark = PlayerO
		}
		session.AIMark = aiMark
		session.Players[aiMark] = aiPlayerName
	}

	return session
}

func (that *Session) IsFinished() bool {
	return !that.Active
}

// IsAITurn reports whether the computer should move next.
func (that *Session) IsAITurn() bool {
	return that.Active && that.Mode.WithAI() && that.Turn == that.AIMark
}

// WinnerName returns the display name of the winner, or "" when there is none.
func (that *Session) WinnerName() string {
	if !that.Winner.IsPlayer() {
		return ""
	}

	return that.Players[that.Winner]
}

// Clone returns a deep copy that shares nothing with the receiver.
func (that *Session) Clone() *Session {
	clone := *that
	clone.Players = maps.Clone(that.Players)
	clone.Scores = maps.Clone(that.Scores)
	if that.WinningLine != nil {
		clone.WinningLine = append([]int(nil), that.WinningLine...)
	}

	return &clone
}
