// Package console is the terminal front end: a renderer that turns game
// events into text and a prompter that reads the player's decisions.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pathfall/pathfall/internal/game/character"
	"github.com/pathfall/pathfall/internal/game/combat"
	"github.com/pathfall/pathfall/internal/game/rules"
	"github.com/pathfall/pathfall/internal/scores"
	"github.com/pathfall/pathfall/internal/session"
)

// HealthBarLength is the width of rendered health bars.
const HealthBarLength = 20

type styles struct {
	banner lipgloss.Style
	hero   lipgloss.Style
	enemy  lipgloss.Style
	info   lipgloss.Style
	high   lipgloss.Style
	mid    lipgloss.Style
	low    lipgloss.Style
}

// newStyles builds the palette for one output. Colours are dropped when the
// output is not a terminal.
func newStyles(lr *lipgloss.Renderer) styles {
	return styles{
		banner: lr.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		hero:  lr.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		enemy: lr.NewStyle().Foreground(lipgloss.Color("#F25D94")).Bold(true),
		info:  lr.NewStyle().Foreground(lipgloss.Color("#999999")),
		high:  lr.NewStyle().Foreground(lipgloss.Color("#04B575")),
		mid:   lr.NewStyle().Foreground(lipgloss.Color("#FFB000")),
		low:   lr.NewStyle().Foreground(lipgloss.Color("#FF4040")),
	}
}

var (
	defaultStyles = newStyles(lipgloss.DefaultRenderer())
	rule          = strings.Repeat("=", 50)
)

// HealthBar draws the character's health ratio as a bar of the given length.
// The fill glyph and colour drop with the ratio.
func HealthBar(c *character.Character, length int) string {
	return defaultStyles.healthBar(c, length)
}

func (st styles) healthBar(c *character.Character, length int) string {
	ratio := c.HealthRatio()
	filled := int(float64(length) * ratio)
	filled = min(max(filled, 0), length)

	glyph, style := "█", st.high
	switch {
	case ratio <= 0.3:
		glyph, style = "░", st.low
	case ratio <= 0.6:
		glyph, style = "▓", st.mid
	}
	return style.Render(strings.Repeat(glyph, filled)) + strings.Repeat("░", length-filled)
}

func (st styles) name(c *character.Character) string {
	if c.Kind().PlayerControlled() {
		return st.hero.Render(c.Name())
	}
	return st.enemy.Render(c.Name())
}

func (st styles) healthLine(c *character.Character) string {
	return fmt.Sprintf("%s %d/%d", st.healthBar(c, HealthBarLength), c.Health(), c.MaxHealth())
}

// Renderer writes a line of text for every game event it observes.
type Renderer struct {
	out io.Writer
	styles
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, styles: newStyles(lipgloss.NewRenderer(out))}
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Handle implements character.Observer.
func (r *Renderer) Handle(subject *character.Character, event rules.EventType, data any) {
	switch event {
	case rules.EventIncreaseHP:
		r.printf("❤️ Max HP increased by %v! Current HP: %d/%d", data, subject.Health(), subject.MaxHealth())
	case rules.EventDamageTaken:
		r.printf("💔 %s takes %v damage! %s", r.name(subject), data, r.healthLine(subject))
	case rules.EventDamageIncreased:
		r.printf("⚔️ Damage increased! Current Damage: %d", subject.Damage())
	case rules.EventXPGained:
		r.printf("⭐ %s gains %v EXP! Total EXP: %d", r.name(subject), data, subject.Experience())
	case rules.EventAttack:
		if attack, ok := data.(character.AttackData); ok {
			with := "no weapon"
			if attack.Weapon != nil {
				with = attack.Weapon.Name
			}
			r.printf("\n%s attacks %s with %s!", r.name(subject), r.name(attack.Target), with)
		}
	case rules.EventDeath:
		r.printf("💀 %s has been defeated!", r.name(subject))
	case rules.EventHeal:
		r.printf("\n%s heals for %v HP! %s", r.name(subject), data, r.healthLine(subject))
	case rules.EventBossDoubleAttack:
		r.printf("💥 %s performs a DOUBLE ATTACK!", r.name(subject))
	case rules.EventPass:
		r.printf("\n%s decides to pass this turn.", r.name(subject))
	case rules.EventExitGame:
		r.printf("\n%s has chosen to exit the game. Thanks for playing!", r.name(subject))
	case rules.EventInvalidChoice:
		r.printf("%s", r.info.Render("Invalid choice! Try again."))
	case rules.EventInvalidOperation:
		r.printf("%s", r.info.Render(fmt.Sprintf("Not allowed: %v", data)))
	case rules.EventLevelUp:
		r.printf("🎉 %s leveled up to Level %v!", r.name(subject), data)
	case rules.EventBattleStart:
		if start, ok := data.(character.BattleStart); ok {
			r.printf("\n%s", rule)
			if start.Starter != nil {
				r.printf("⚔️  %s! %s goes first! (Speed: %d)", start.Kind, r.name(start.Starter), start.Starter.Speed())
			} else {
				r.printf("⚔️  %s!", start.Kind)
			}
			r.printf("%s\n", rule)
		}
	case rules.EventBattleEnd:
		r.printf("\n%s", rule)
		if result, ok := data.(combat.Result); ok {
			outcome := "lost"
			if result.HeroTeamWon {
				outcome = "won"
			}
			r.printf("📊 BATTLE %s in %d rounds - %s: %d/%d HP | %d EXP", strings.ToUpper(outcome), result.Rounds,
				r.name(subject), subject.Health(), subject.MaxHealth(), subject.Experience())
		}
		r.printf("%s", rule)
	case rules.EventExplorationStart:
		if start, ok := data.(rules.ExplorationStart); ok {
			r.printf("\n🎮 Starting exploration of the %s!", start.ZoneName)
			r.printf("   You will traverse %d stages before facing the final boss.\n", start.Stages)
		}
	case rules.EventStageStart:
		if stage, ok := data.(rules.StageStart); ok {
			r.printf("\n%s", r.banner.Render(fmt.Sprintf("🗺️  EXPLORATION - Stage %d/%d", stage.Stage, stage.Stages)))
			r.printf("   Zone: %s\n", stage.ZoneName)
		}
	case rules.EventPathChosen:
		if path, ok := data.(rules.PathChosen); ok {
			r.printf("\n🚶 You take the %s...", path.Name)
		}
	case rules.EventWeaponFound:
		if weapon, ok := data.(*character.Weapon); ok {
			r.printf("\n🗡️  You found a %s! (%d DMG)", weapon.Name, weapon.Damage)
		}
	case rules.EventEnemySpawned:
		r.printf("\n👹 A wild %s (%s) appears!", r.name(subject), subject.Type())
		r.printf("   HP: %d | DMG: %d | EXP: %d | Speed: %d", subject.MaxHealth(), subject.Damage(), subject.Experience(), subject.Speed())
	case rules.EventBossSpawned:
		r.printf("\n%s", r.banner.Render("👑 BOSS FIGHT!"))
		r.printf("💀 %s appears!", r.name(subject))
		r.printf("   HP: %d | DMG: %d | EXP: %d", subject.MaxHealth(), subject.Damage(), subject.Experience())
	case rules.EventBattleStats:
		if stats, ok := data.(rules.BattleStats); ok {
			r.printf("   Final stats: %d EXP | %d battles won", subject.Experience(), stats.BattlesWon)
			r.printf("   Defeated at %s", stats.StageMsg)
			r.printf("   %d attacks | %d damage taken | %d kills", stats.Attacks, stats.DamageTaken, stats.Kills)
		}
	case rules.EventExplorationVictory:
		if victory, ok := data.(rules.ExplorationVictory); ok {
			r.printf("\n🎉 VICTORY! You have conquered the %s!", victory.ZoneName)
		}
	case rules.EventStartClassicMode:
		r.printf("\n🎮 Starting Classic Mode! Endless battles await...\n")
	case rules.EventEndClassicMode:
		if end, ok := data.(rules.ClassicModeEnd); ok {
			if end.Win {
				r.printf("\n🎉 Thanks for playing! Final stats:")
			} else {
				r.printf("\n💀 GAME OVER! %s has been defeated!", r.name(subject))
			}
			r.printf("   Final stats: %d EXP | %d battles won", subject.Experience(), end.BattlesWon)
		}
	}
}

// ShowScores prints the high-score table.
func (r *Renderer) ShowScores(top []scores.Score) {
	if len(top) == 0 {
		r.printf("\n🏆 No high scores yet! Be the first!\n")
		return
	}
	r.printf("\n%s", rule)
	r.printf("🏆 TOP %d HIGH SCORES 🏆", len(top))
	r.printf("%s", rule)
	for i, s := range top {
		r.printf("%s %s: %d EXP (%d battles won)", scores.Medal(i+1), s.Name, s.Experience, s.BattlesWon)
	}
	r.printf("%s\n", rule)
}

// ShowSummary prints the end-of-session summary.
func (r *Renderer) ShowSummary(summary session.Summary) {
	r.printf("\n%s", r.info.Render(fmt.Sprintf("%s session ended: %s", summary.Mode, summary.Outcome)))
	r.printf("   %s | level %d | %d EXP | %d battles won", summary.Hero, summary.Level, summary.Experience, summary.BattlesWon)
	t := summary.Totals
	r.printf("   %d attacks | %d damage dealt | %d damage taken | %d kills", t.Attacks, t.DamageDealt, t.DamageTaken, t.Kills)
}
