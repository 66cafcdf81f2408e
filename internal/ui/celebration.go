package ui

import (
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/zhubert/studdy/internal/session"
)

// CelebrationTickMsg advances the celebration animation
type CelebrationTickMsg time.Time

// CelebrationTick returns a command that sends a celebration tick after a delay
func CelebrationTick() tea.Cmd {
	return tea.Tick(CelebrationTickInterval, func(t time.Time) tea.Msg {
		return CelebrationTickMsg(t)
	})
}

var (
	confettiGlyphs = []string{"🎉", "🎊", "✨", "⭐", "·", "*", "+"}
	balloonGlyphs  = []string{"🎈", "🎈", "🎈", "·", " "}
)

// Celebration animates one-shot effects in the strip under the header.
// Starting a new effect while one is running replaces it.
type Celebration struct {
	width  int
	effect session.Effect
	frame  int
	rng    *rand.Rand
}

// NewCelebration creates an idle celebration strip.
func NewCelebration() *Celebration {
	return &Celebration{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// SetWidth sets the strip width
func (c *Celebration) SetWidth(width int) {
	c.width = width
}

// Active reports whether an effect is animating.
func (c *Celebration) Active() bool {
	return c.effect != 0
}

// Effect returns the running effect, or zero when idle.
func (c *Celebration) Effect() session.Effect {
	return c.effect
}

// Start begins animating effect. The returned command starts the tick
// chain only when no chain is already running.
func (c *Celebration) Start(effect session.Effect) tea.Cmd {
	running := c.Active()
	c.effect = effect
	c.frame = 0
	if running {
		return nil
	}
	return CelebrationTick()
}

// Update advances one frame on CelebrationTickMsg and keeps ticking until
// the animation ends.
func (c *Celebration) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(CelebrationTickMsg); !ok || !c.Active() {
		return nil
	}
	c.frame++
	if c.frame >= CelebrationFrames {
		c.effect = 0
		c.frame = 0
		return nil
	}
	return CelebrationTick()
}

// View renders the strip. It is blank when idle so the layout does not jump.
func (c *Celebration) View() string {
	if c.width <= 0 {
		return ""
	}
	switch c.effect {
	case session.EffectConfetti:
		return c.scatter(confettiGlyphs, 5)
	case session.EffectBalloons:
		return c.scatter(balloonGlyphs, 6)
	case session.EffectTimesUp:
		banner := "⏰ Time's up! Take a break!"
		if c.frame%2 == 1 {
			banner = "   Time's up! Take a break!"
		}
		pad := max((c.width-runewidth.StringWidth(banner)-2)/2, 0)
		return strings.Repeat(" ", pad) + TimesUpStyle.Render(banner)
	}
	return strings.Repeat(" ", c.width)
}

// scatter fills the strip with glyphs, one every density cells on average.
func (c *Celebration) scatter(glyphs []string, density int) string {
	var b strings.Builder
	w := 0
	for w < c.width {
		g := " "
		if c.rng.Intn(density) == 0 {
			g = glyphs[c.rng.Intn(len(glyphs))]
		}
		gw := runewidth.StringWidth(g)
		if w+gw > c.width {
			break
		}
		b.WriteString(g)
		w += gw
	}
	return ansi.Truncate(b.String(), c.width, "")
}
