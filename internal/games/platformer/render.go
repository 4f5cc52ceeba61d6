package platformer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	FloorChar     = '═'
	PlatformTop   = '▀'
	PlatformFill  = '░'
	PlayerHead    = '@'
	PlayerBody    = '#'
	PlayerFeet    = 'A'
	EnemyChar     = 'M'
	SquashedChar  = '_'
	StarChar      = '.'
	SunChar       = '☼'
	MoonChar      = '☾'
	CrosshairChar = '+'
)

const hudRows = 2

var coinFrames = []rune{'O', '0', '|', '0'}

// view projects world coordinates onto the side-view grid.
type view struct {
	w, h        int
	groundRow   int
	centerX     float64
	baseZ       float64
	unitsPerCol float64
	unitsPerRow float64
}

func newView(dst *core.Screen, snap Snapshot, phys config.PhysicsConfig) view {
	v := view{
		w:           dst.Width(),
		h:           dst.Height(),
		groundRow:   dst.Height() - 2,
		unitsPerCol: math.Max(snap.Camera.Radius/35, 1),
		unitsPerRow: core.ClampF(snap.Camera.Height/9, 5, 160),
	}

	p := snap.Player
	if snap.Camera.Mode == ViewFirstPerson {
		v.centerX = p.X + float64(v.w)/4*v.unitsPerCol
	} else {
		lead := math.Sin(snap.Camera.Theta*math.Pi/180) * snap.Camera.Radius * 0.25
		v.centerX = p.X + lead
	}

	// Scroll up once the player climbs past 60% of the visible height.
	visible := float64(v.groundRow-hudRows) * v.unitsPerRow
	feet := p.Z - phys.FootOffset
	if feet > visible*0.6 {
		v.baseZ = feet - visible*0.6
	}
	return v
}

func (v view) col(x float64) int {
	return v.w/2 + int(math.Round((x-v.centerX)/v.unitsPerCol))
}

func (v view) row(z float64) int {
	return v.groundRow - int(math.Floor((z-v.baseZ)/v.unitsPerRow))
}

func renderSnapshot(dst *core.Screen, snap Snapshot, cfg config.PlatformerConfig, elapsed time.Duration, paused bool) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 8 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	v := newView(dst, snap, cfg.Physics)

	drawSky(dst, v, snap.DayNight)
	if floor := v.row(0) + 1; floor < v.h {
		dst.DrawHLine(0, floor, v.w, FloorChar, core.ColorGray)
	}
	maxZ := cfg.World.MaxHeight()
	for _, p := range snap.Platforms {
		drawPlatform(dst, v, p, maxZ)
	}
	drawCoins(dst, v, snap.Coins, snap.CoinSpin)
	drawEnemies(dst, v, snap.Enemies)
	drawParticles(dst, v, snap.Particles)
	drawPlayer(dst, v, snap, cfg.Physics)
	drawHUD(dst, snap, cfg, elapsed)

	switch {
	case snap.State.GameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.State.Score))
	case paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawSky(dst *core.Screen, v view, dn DayNight) {
	if !dn.IsNight() {
		dst.SetColored(v.w-4, hudRows, SunChar, core.ColorBrightYellow)
		return
	}
	for y := hudRows; y < v.groundRow/2; y++ {
		for x := 0; x < v.w; x++ {
			if (x*7+y*13)%23 == 0 {
				dst.SetColored(x, y, StarChar, core.ColorDarkGray)
			}
		}
	}
	dst.SetColored(v.w-4, hudRows, MoonChar, core.ColorBrightWhite)
}

func drawPlatform(dst *core.Screen, v view, p Platform, maxZ float64) {
	c1, c2 := v.col(p.X1), v.col(p.X2)
	if c2 < 0 || c1 >= v.w {
		return
	}
	c1, c2 = max(c1, 0), min(c2, v.w-1)

	top := v.row(p.Z) + 1
	if top >= v.h-1 {
		return // Floor level
	}
	color := core.HeightColor(p.Z, maxZ)
	for x := c1; x <= c2; x++ {
		dst.SetColored(x, top, PlatformTop, color)
		dst.FillColumn(x, max(top+1, hudRows), v.h-2, PlatformFill, core.ColorDarkGray)
	}
}

func drawCoins(dst *core.Screen, v view, coins []Coin, spin float64) {
	frame := coinFrames[int(spin/90)%len(coinFrames)]
	for _, c := range coins {
		if c.Taken {
			continue
		}
		dst.SetColored(v.col(c.X), v.row(c.Z), frame, core.ColorYellow)
	}
}

func drawEnemies(dst *core.Screen, v view, enemies []Enemy) {
	for _, e := range enemies {
		if !e.Alive {
			continue
		}
		x := v.col(e.X)
		if e.Stomped {
			dst.SetColored(x, v.row(e.Bottom()), SquashedChar, core.ColorDarkGray)
			continue
		}
		for y := v.row(e.Top()); y <= v.row(e.Bottom()); y++ {
			dst.SetColored(x, y, EnemyChar, core.ColorRed)
		}
	}
}

func drawParticles(dst *core.Screen, v view, particles []Particle) {
	for _, p := range particles {
		r, c := '*', core.ColorBrightYellow
		if p.Kind == ParticleEnemy {
			r, c = '+', core.ColorOrange
		}
		if p.Life < 8 {
			r = '.'
		}
		dst.SetColored(v.col(p.X), v.row(p.Z), r, c)
	}
}

func drawPlayer(dst *core.Screen, v view, snap Snapshot, phys config.PhysicsConfig) {
	p := snap.Player
	x := v.col(p.X)
	feet := p.Z - phys.FootOffset

	if snap.Camera.Mode == ViewFirstPerson {
		dst.SetColored(x, v.row(feet+phys.PlayerHeight/2), CrosshairChar, core.ColorBrightWhite)
		return
	}
	// Blink while invulnerable.
	if p.HurtCooldown > 0 && p.HurtCooldown%6 < 3 {
		return
	}

	color := core.ColorBrightGreen
	if p.LongJumping {
		color = core.ColorBrightBlue
	}
	headRow, feetRow := v.row(feet+phys.PlayerHeight), v.row(feet)
	for y := headRow + 1; y < feetRow; y++ {
		dst.SetColored(x, y, PlayerBody, color)
	}
	dst.SetColored(x, headRow, PlayerHead, color)
	dst.SetColored(x, feetRow, PlayerFeet, color)
}

func drawHUD(dst *core.Screen, snap Snapshot, cfg config.PlatformerConfig, elapsed time.Duration) {
	st := snap.State
	secs := int(elapsed / time.Second)
	left := fmt.Sprintf(" Score: %d  Coins: %d  Time: %02d:%02d ", st.Score, st.Coins, secs/60, secs%60)
	dst.DrawText(1, 0, left)

	sky := "day"
	if snap.DayNight.IsNight() {
		sky = "night"
	}
	right := fmt.Sprintf(" %s | %s ", snap.Camera.Mode, sky)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	maxLife := max(cfg.Gameplay.MaxLife, 1)
	const barW = 20
	filled := core.Clamp(st.Life*barW/maxLife, 0, barW)
	color := core.ColorGreen
	switch {
	case st.Life*4 <= maxLife:
		color = core.ColorRed
	case st.Life*2 <= maxLife:
		color = core.ColorYellow
	}
	dst.DrawText(1, 1, " Life ")
	dst.DrawTextColored(7, 1, strings.Repeat("█", filled)+strings.Repeat("░", barW-filled), color)
	dst.DrawText(8+barW, 1, fmt.Sprintf("%d/%d", st.Life, maxLife))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
