package rules

// EventType indicates the category of a state-change notification.
type EventType string

const (
	// Stat events
	EventIncreaseHP      EventType = "increase_hp"
	EventDamageTaken     EventType = "damage_taken"
	EventDamageIncreased EventType = "damage_increased"
	EventXPGained        EventType = "xp_gained"
	EventHeal            EventType = "heal"
	EventDeath           EventType = "death"
	EventLevelUp         EventType = "level_up"

	// Turn events
	EventAttack           EventType = "attack"
	EventBossDoubleAttack EventType = "boss_double_attack"
	EventPass             EventType = "pass"
	EventExitGame         EventType = "exit_game"
	EventInvalidChoice    EventType = "invalid_choice"
	EventInvalidOperation EventType = "invalid_operation"

	// Battle events
	EventBattleStart EventType = "battle_start"
	EventBattleEnd   EventType = "battle_end"
	EventBattleStats EventType = "battle_stats"

	// Exploration events
	EventExplorationStart   EventType = "exploration_start"
	EventStageStart         EventType = "stage_start"
	EventPathChosen         EventType = "path_chosen"
	EventWeaponFound        EventType = "weapon_found"
	EventEnemySpawned       EventType = "enemy_spawned"
	EventBossSpawned        EventType = "boss_spawned"
	EventExplorationVictory EventType = "exploration_victory"

	// Classic mode events
	EventStartClassicMode EventType = "start_classic_mode"
	EventEndClassicMode   EventType = "end_classic_mode"
)

// IsTerminal reports whether the event closes a battle or a session. The
// defeat summary battle_stats and the player's exit count as closing too.
func (et EventType) IsTerminal() bool {
	switch et {
	case EventBattleEnd, EventExitGame, EventExplorationVictory, EventEndClassicMode, EventBattleStats:
		return true
	default:
		return false
	}
}

// InvalidChoice is the payload of EventInvalidChoice.
type InvalidChoice struct {
	Decision string // "action", "upgrade", "path", ...
	Attempt  int    // 1-based count of consecutive invalid selections
}

// ExplorationStart is the payload of EventExplorationStart.
type ExplorationStart struct {
	ZoneName string
	Stages   int
}

// StageStart is the payload of EventStageStart.
type StageStart struct {
	ZoneName string
	Stage    int
	Stages   int
}

// PathChosen is the payload of EventPathChosen.
type PathChosen struct {
	Name        string
	Description string
	Difficulty  string
}

// BattleStats is the payload of EventBattleStats, emitted when a session ends in defeat.
type BattleStats struct {
	BattlesWon  int
	StageMsg    string
	Attacks     int
	DamageTaken int
	Kills       int
}

// ExplorationVictory is the payload of EventExplorationVictory.
type ExplorationVictory struct {
	ZoneName string
}

// ClassicModeEnd is the payload of EventEndClassicMode.
type ClassicModeEnd struct {
	Win        bool
	BattlesWon int
}
