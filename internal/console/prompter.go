package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pathfall/pathfall/internal/game/character"
	"github.com/pathfall/pathfall/internal/game/combat"
	"github.com/pathfall/pathfall/internal/game/exploration"
	"github.com/pathfall/pathfall/internal/game/rules"
	"github.com/pathfall/pathfall/internal/session"
)

var _ session.DecisionProvider = (*Prompter)(nil)

// Prompter asks the player through numbered menus read line by line. The
// end of input is treated as a request to quit.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	styles
}

// NewPrompter creates a prompter reading answers from in and writing menus to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out, styles: newStyles(lipgloss.NewRenderer(out))}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", rules.ErrQuit
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// menu prints options numbered from 1 and returns the 0-based index picked.
// Unreadable answers are asked again.
func (p *Prompter) menu(title string, options []string) (int, error) {
	fmt.Fprintf(p.out, "\n%s\n", title)
	for i, option := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, option)
	}
	for {
		line, err := p.readLine(fmt.Sprintf("Choose (1-%d): ", len(options)))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintln(p.out, p.info.Render("Invalid choice! Try again."))
	}
}

// AskName reads the hero's name, falling back to fallback on an empty line.
func (p *Prompter) AskName(fallback string) (string, error) {
	name, err := p.readLine(fmt.Sprintf("Enter your hero's name [%s]: ", fallback))
	if err != nil {
		return "", err
	}
	if name == "" {
		return fallback, nil
	}
	return name, nil
}

// ChooseAction implements combat.ActionChooser.
func (p *Prompter) ChooseAction(actor *character.Character, opponents []*character.Character, inventory []character.Item) (combat.Action, error) {
	fmt.Fprintf(p.out, "\n%s %s\n", p.name(actor), p.healthLine(actor))
	options := make([]string, len(combat.ActionKinds))
	for i, kind := range combat.ActionKinds {
		options[i] = strings.ToUpper(kind.String()[:1]) + kind.String()[1:]
	}

	for {
		i, err := p.menu("What will you do?", options)
		if err != nil {
			return combat.Action{}, err
		}
		switch kind := combat.ActionKinds[i]; kind {
		case combat.ActionAttack:
			return p.chooseAttack(actor, opponents)
		case combat.ActionUseItem:
			item, ok, err := p.chooseConsumable(inventory)
			if err != nil {
				return combat.Action{}, err
			}
			if !ok {
				continue
			}
			return combat.UseItem(item), nil
		case combat.ActionHeal:
			return combat.Heal(), nil
		case combat.ActionPass:
			return combat.Pass(), nil
		default:
			return combat.Quit(), nil
		}
	}
}

func (p *Prompter) chooseAttack(actor *character.Character, opponents []*character.Character) (combat.Action, error) {
	alive := make([]*character.Character, 0, len(opponents))
	for _, o := range opponents {
		if o.IsAlive() {
			alive = append(alive, o)
		}
	}
	if len(alive) == 0 {
		return combat.Attack(nil, nil), nil
	}

	target := alive[0]
	if len(alive) > 1 {
		options := make([]string, len(alive))
		for i, o := range alive {
			options[i] = fmt.Sprintf("%s %d/%d", o.Name(), o.Health(), o.MaxHealth())
		}
		i, err := p.menu("Attack whom?", options)
		if err != nil {
			return combat.Action{}, err
		}
		target = alive[i]
	}

	weapons := actor.Weapons()
	if len(weapons) == 0 {
		return combat.Attack(target, nil), nil
	}
	options := []string{fmt.Sprintf("Hands (%d DMG)", actor.Damage())}
	for _, w := range weapons {
		options = append(options, w.String())
	}
	i, err := p.menu("Attack with?", options)
	if err != nil {
		return combat.Action{}, err
	}
	if i == 0 {
		return combat.Attack(target, nil), nil
	}
	return combat.Attack(target, weapons[i-1]), nil
}

// chooseConsumable reports false when there is nothing to use or the player
// backs out.
func (p *Prompter) chooseConsumable(inventory []character.Item) (character.Consumable, bool, error) {
	var consumables []character.Consumable
	for _, item := range inventory {
		if c, ok := item.(character.Consumable); ok {
			consumables = append(consumables, c)
		}
	}
	if len(consumables) == 0 {
		fmt.Fprintln(p.out, "You have no usable items.")
		return nil, false, nil
	}

	options := make([]string, 0, len(consumables)+1)
	for _, c := range consumables {
		options = append(options, fmt.Sprint(c))
	}
	options = append(options, "Back")
	i, err := p.menu("Use which item?", options)
	if err != nil || i == len(consumables) {
		return nil, false, err
	}
	return consumables[i], true, nil
}

// ChooseUpgrade implements character.UpgradeChooser.
func (p *Prompter) ChooseUpgrade(actor *character.Character) (character.Upgrade, error) {
	options := []string{
		fmt.Sprintf("Increase Max HP (%d -> %d)", actor.MaxHealth(), actor.MaxHealth()+character.MaxHealthUpgrade),
		fmt.Sprintf("Increase Damage (%d -> %d)", actor.Damage(), actor.Damage()+character.DamageUpgrade),
	}
	i, err := p.menu(fmt.Sprintf("Level %d! Choose an upgrade:", actor.Level()), options)
	if err != nil {
		return 0, err
	}
	return character.Upgrades[i], nil
}

// ChoosePath implements exploration.PathChooser.
func (p *Prompter) ChoosePath(paths []exploration.Path) (int, error) {
	options := make([]string, len(paths))
	for i, path := range paths {
		options[i] = path.String()
	}
	return p.menu("Choose your path:", options)
}

// ConfirmContinue asks whether to play another classic battle.
func (p *Prompter) ConfirmContinue() (bool, error) {
	line, err := p.readLine("\nPlay again? [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
