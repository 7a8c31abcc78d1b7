package state

import (
	"errors"
	"fmt"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/level"
	"roomcrawl/pkg/game/room"
)

// MaxGlobalEntities is the capacity of the global entity table
const MaxGlobalEntities = 16

// ErrEntityTableFull is returned when no global entity slot is left
var ErrEntityTableFull = errors.New("state: global entity table full")

// GlobalEntity is an entity that can move between rooms
type GlobalEntity struct {
	RoomIndex int
	room.Entity
}

// Game is the explicit game context shared by generation, movement and rendering
type Game struct {
	Level *level.Level

	CurrentRoomIndex int
	CurrentRoom      *room.Room
	// Adjacent rooms of the current room, indexed Left, Up, Right, Down; nil at the level edge
	Adjacent [world.DirectionCount]*room.Room

	entities    [MaxGlobalEntities]GlobalEntity
	entityCount int
	PlayerIndex int // -1 until the player is placed

	Seed    int64
	BuildID string

	Messages []string
}

// NewGame creates an empty game with no level
func NewGame() *Game {
	return &Game{
		PlayerIndex:      -1,
		CurrentRoomIndex: -1,
		Messages:         make([]string, 0),
	}
}

// Reset tears down the level and every entity
func (g *Game) Reset() {
	g.Level = nil
	g.CurrentRoomIndex = -1
	g.CurrentRoom = nil
	g.Adjacent = [world.DirectionCount]*room.Room{}
	g.entities = [MaxGlobalEntities]GlobalEntity{}
	g.entityCount = 0
	g.PlayerIndex = -1
	g.BuildID = ""
	g.ClearMessages()
}

// AddGlobalEntity appends an entity and returns its index
func (g *Game) AddGlobalEntity(e GlobalEntity) (int, error) {
	if g.entityCount >= MaxGlobalEntities {
		return -1, ErrEntityTableFull
	}
	idx := g.entityCount
	g.entities[idx] = e
	g.entityCount++
	return idx, nil
}

// GlobalEntityCount returns the number of global entities
func (g *Game) GlobalEntityCount() int {
	return g.entityCount
}

// GlobalEntity returns a pointer to entity idx, or nil if out of range
func (g *Game) GlobalEntity(idx int) *GlobalEntity {
	if idx < 0 || idx >= g.entityCount {
		return nil
	}
	return &g.entities[idx]
}

// ForEachGlobalEntityIn visits the global entities in the given room
func (g *Game) ForEachGlobalEntityIn(roomIndex int, fn func(idx int, e *GlobalEntity)) {
	for i := 0; i < g.entityCount; i++ {
		if g.entities[i].RoomIndex == roomIndex {
			fn(i, &g.entities[i])
		}
	}
}

// Player returns the player entity, or nil before placement
func (g *Game) Player() *GlobalEntity {
	return g.GlobalEntity(g.PlayerIndex)
}

// SetPlayerRoom moves the player to another room without changing its pixel position
func (g *Game) SetPlayerRoom(roomIndex int) {
	if p := g.Player(); p != nil {
		p.RoomIndex = roomIndex
	}
}

// SetCurrentRoom selects the room being played and refreshes its neighbours
func (g *Game) SetCurrentRoom(roomIndex int) error {
	if g.Level == nil {
		return errors.New("state: no level loaded")
	}
	r := g.Level.Room(roomIndex)
	if r == nil {
		return fmt.Errorf("state: room index %d outside level", roomIndex)
	}
	g.CurrentRoomIndex = roomIndex
	g.CurrentRoom = r
	g.Adjacent = g.Level.Adjacent(r.Coord)
	return nil
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
