package domain

// SpawnKind - what a spawn request asks the gameplay side to create.
type SpawnKind uint8

const (
	SpawnUnknown SpawnKind = iota
	SpawnEnemy
	SpawnChest
	SpawnNPC
	SpawnExitPortal
)

var spawnKindToString = map[SpawnKind]string{
	SpawnEnemy:      "ENEMY",
	SpawnChest:      "CHEST",
	SpawnNPC:        "NPC",
	SpawnExitPortal: "EXIT_PORTAL",
}

// AllSpawnKinds lists the kinds in dispatch order.
var AllSpawnKinds = []SpawnKind{SpawnEnemy, SpawnChest, SpawnNPC, SpawnExitPortal}

func (k SpawnKind) String() string {
	if val, ok := spawnKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// SpawnPoint is one entity the collaborator should create.
type SpawnPoint struct {
	World     Vec2     `json:"world"`
	Tile      Position `json:"tile"`
	EnemyType string   `json:"enemyType,omitempty"`
	Boss      bool     `json:"boss,omitempty"`
}

// SpawnRequest is raised once per non-empty marker category when a zone
// activates. It is fire-and-forget: the orchestrator never sees the result.
type SpawnRequest struct {
	Kind   SpawnKind    `json:"kind"`
	Points []SpawnPoint `json:"points"`
}

// Positions returns only the world positions of the request.
func (r SpawnRequest) Positions() []Vec2 {
	out := make([]Vec2, 0, len(r.Points))
	for _, p := range r.Points {
		out = append(out, p.World)
	}
	return out
}
