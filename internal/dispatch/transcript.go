package dispatch

type Role string

const (
	RoleHuman     Role = "human"
	RoleAssistant Role = "assistant"
)

// Turn is one transcript entry. Chart is set when the assistant turn carries
// a rendered PNG alongside its text.
type Turn struct {
	Role  Role
	Text  string
	Chart []byte
}

// Transcript is the append-only turn sequence for one conversation. The
// caller owns it; the dispatcher only appends.
type Transcript struct {
	turns []Turn
}

func (t *Transcript) Append(turn Turn) {
	t.turns = append(t.turns, turn)
}

func (t *Transcript) Turns() []Turn {
	return t.turns
}

func (t *Transcript) Last() (Turn, bool) {
	if len(t.turns) == 0 {
		return Turn{}, false
	}
	return t.turns[len(t.turns)-1], true
}
