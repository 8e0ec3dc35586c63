// kickview shows the classified points of a soccer ball as a scatter plot.
//
// Controls:
//
//	Arrows     - Turn the ball
//	Mouse drag - Turn the ball
//	R          - Reset view
//	Q/Esc      - Quit
package main

import (
	"errors"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"

	"github.com/borkshop/kickball/internal/logging"
	"github.com/borkshop/kickball/internal/scatter"
	"github.com/borkshop/kickball/internal/soccer"
)

const (
	screenSize = 640
	turnStep   = 0.03
	dragScale  = 0.01
)

var (
	background = color.RGBA{0x80, 0x80, 0x80, 0xff}
	blackColor = color.RGBA{0x10, 0x10, 0x10, 0xff}
	whiteColor = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
)

type viewer struct {
	scene  scatter.Scene
	view   scatter.View
	radius float32

	dragging bool
	lastX    int
	lastY    int
}

func newViewer(sc scatter.Scene, radius float32) *viewer {
	vw := &viewer{scene: sc, radius: radius}
	vw.reset()
	return vw
}

func (vw *viewer) reset() {
	vw.view = scatter.View{
		Scale:   screenSize * 0.4,
		CenterX: screenSize / 2,
		CenterY: screenSize / 2,
	}
}

func (vw *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		vw.reset()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		vw.view.Yaw -= turnStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		vw.view.Yaw += turnStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		vw.view.Pitch += turnStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		vw.view.Pitch -= turnStep
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if vw.dragging {
			vw.view.Yaw -= float64(x-vw.lastX) * dragScale
			vw.view.Pitch += float64(y-vw.lastY) * dragScale
		}
		vw.dragging = true
	} else {
		vw.dragging = false
	}
	vw.lastX, vw.lastY = x, y
	return nil
}

func (vw *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, m := range vw.scene.Markers(vw.view) {
		c := whiteColor
		if m.Black {
			c = blackColor
		}
		vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), vw.radius, c, true)
	}
}

func (vw *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	var (
		subdivisions int
		radius       float32
		verbose      bool
	)
	cmd := &cobra.Command{
		Use:   "kickview",
		Short: "Scatter plot of a soccer ball's black and white points",
		Long: `kickview - a soccer ball's classified points in a window.

Controls:
  Arrows, mouse drag - Turn the ball
  R                  - Reset view
  Q, Esc             - Quit`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			black, white, err := soccer.Points(subdivisions)
			if err != nil {
				return err
			}
			ebiten.SetWindowTitle("kickview")
			ebiten.SetWindowSize(screenSize, screenSize)
			err = ebiten.RunGame(newViewer(scatter.Scene{Black: black, White: white}, radius))
			if errors.Is(err, ebiten.Termination) {
				err = nil
			}
			return err
		},
	}
	cmd.Flags().IntVar(&subdivisions, "subdivisions", 4, "Icosphere subdivision level")
	cmd.Flags().Float32Var(&radius, "radius", 2, "Marker radius in pixels")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
