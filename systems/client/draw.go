package client

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/sim"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/automoto/tilerun/systems"
	"github.com/automoto/tilerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	quadVertices = make([]ebiten.Vertex, 4)
	quadIndices  = []uint16{0, 1, 2, 0, 2, 3}
)

func init() {
	whiteImage.Fill(color.White)
}

// cameraOffset returns the top-left of the view in world pixels.
func cameraOffset(w donburi.World) (float64, float64) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(entry)
	return camera.Position.X, camera.Position.Y
}

func blockColor(b *sim.Block) color.RGBA {
	switch {
	case b.Code == tiles.Spawn:
		return colornames.Gold
	case !b.Solid:
		return colornames.Darkolivegreen
	case tiles.IsIcy(b.Code):
		return colornames.Lightskyblue
	case tiles.IsGentle(b.Code):
		return colornames.Peru
	case b.IsSlope():
		return colornames.Sienna
	}
	return colornames.Saddlebrown
}

// DrawLevel draws the blocks inside the view. Slopes are drawn as the
// quadrilateral between their surface line and the solid side.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	level, ok := systems.GetLevel(e.World)
	if !ok {
		return
	}
	camX, camY := cameraOffset(e.World)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	idx := level.World.Index()
	minCol := int(math.Floor(camX / tiles.Size))
	minRow := int(math.Floor(camY / tiles.Size))
	maxCol := int(math.Ceil((camX + float64(width)) / tiles.Size))
	maxRow := int(math.Ceil((camY + float64(height)) / tiles.Size))

	for col := minCol; col <= maxCol; col++ {
		for row := minRow; row <= maxRow; row++ {
			b := idx.At(col, row)
			if b == nil {
				continue
			}
			drawBlock(screen, b, b.X-camX, b.Y-camY)
		}
	}
}

func drawBlock(screen *ebiten.Image, b *sim.Block, x, y float64) {
	c := blockColor(b)
	if b.Code == tiles.Spawn {
		vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(b.W)-2, float32(b.H)-2, 1, c, false)
		return
	}
	if !b.IsSlope() {
		vector.FillRect(screen, float32(x), float32(y), float32(b.W), float32(b.H), c, false)
		return
	}

	bottom := y + b.H
	left, right := gamemath.LineEnds(bottom, b.M, b.B, b.W)
	if b.SlopeSurface() {
		fillQuad(screen, c,
			x, left,
			x+b.W, right,
			x+b.W, bottom,
			x, bottom,
		)
		return
	}
	fillQuad(screen, c,
		x, y,
		x+b.W, y,
		x+b.W, right,
		x, left,
	)
}

// fillQuad fills the quadrilateral given by four corners in order.
func fillQuad(screen *ebiten.Image, c color.RGBA, pts ...float64) {
	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	bl := float32(c.B) / 0xff
	a := float32(c.A) / 0xff
	for i := range quadVertices {
		quadVertices[i] = ebiten.Vertex{
			DstX:   float32(pts[i*2]),
			DstY:   float32(pts[i*2+1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: bl,
			ColorA: a,
		}
	}
	screen.DrawTriangles(quadVertices, quadIndices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// DrawActors draws each player as a box with a marker on its facing side.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(e.World)
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		actor := components.Actor.Get(entry)
		v := actor.View()
		x := float32(v.X - camX)
		y := float32(v.Y - camY)

		c := colornames.Crimson
		switch v.Costume {
		case sim.CostumeSliding:
			c = colornames.Orange
		case sim.CostumeAirborne:
			c = colornames.Tomato
		}
		vector.FillRect(screen, x, y, float32(v.W), float32(v.H), c, false)

		eyeX := x + float32(v.W) - 6
		if v.Facing < 0 {
			eyeX = x + 2
		}
		vector.FillRect(screen, eyeX, y+8, 4, 4, colornames.White, false)
	})
}

// DrawFade darkens the screen while a respawn fade is running.
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Alpha <= 0 {
		return
	}
	a := uint8(gamemath.Clamp(float64(fade.Alpha), 0, 1) * 0xff)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), color.RGBA{A: a}, false)
}
