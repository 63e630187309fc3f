package board

// Player identifies one of the two sides. The zero value is NoPlayer so an
// unset Player is never mistaken for a real side.
type Player uint8

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

type playerInfo struct {
	index  int
	next   Player
	symbol byte
	name   string
}

// playerTable is the only place that knows how a Player maps to an array
// index and to its successor.
var playerTable = [...]playerInfo{
	NoPlayer:  {index: -1, next: NoPlayer, symbol: '.', name: "NO_PLAYER"},
	PlayerOne: {index: 0, next: PlayerTwo, symbol: 'o', name: "PLAYER_ONE"},
	PlayerTwo: {index: 1, next: PlayerOne, symbol: 'x', name: "PLAYER_TWO"},
}

func (p Player) info() playerInfo {
	if int(p) >= len(playerTable) {
		return playerTable[NoPlayer]
	}
	return playerTable[p]
}

// Players lists both sides in turn order.
var Players = [2]Player{PlayerOne, PlayerTwo}

// Index returns the slot used for per-player arrays. It panics for
// NoPlayer; callers are expected to only pass real sides.
func (p Player) Index() int {
	idx := p.info().index
	if idx < 0 {
		panic("board: index of invalid player")
	}
	return idx
}

// Next returns the other side.
func (p Player) Next() Player {
	return p.info().next
}

// Valid reports whether p is one of the two real sides.
func (p Player) Valid() bool {
	return p.info().index >= 0
}

// Symbol is the single character used for this side's stones on the
// display and in position notation.
func (p Player) Symbol() byte {
	return p.info().symbol
}

func (p Player) String() string {
	return p.info().name
}

// PlayerFromSymbol is the inverse of Symbol.
func PlayerFromSymbol(c byte) Player {
	for _, p := range Players {
		if playerTable[p].symbol == c {
			return p
		}
	}
	return NoPlayer
}
