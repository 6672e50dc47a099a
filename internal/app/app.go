//go:build ebiten

package app

import (
	"context"
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"skyplayer/internal/core"
	"skyplayer/internal/library"
	"skyplayer/internal/player"
	"skyplayer/internal/playlist"
	"skyplayer/internal/render"
	"skyplayer/internal/sky"
	"skyplayer/internal/ui"
)

const panelMargin = 16

// Game draws the sky behind the player widgets and routes input to them.
type Game struct {
	comp    *sky.Compositor
	state   sky.State
	canvas  *render.Canvas
	painter *render.Painter
	clock   *core.FrameClock

	scanner   *library.Scanner
	list      *playlist.Playlist
	transport *player.Transport

	nowPlaying *ui.NowPlaying
	table      *ui.PlaylistTable
	overlay    *ui.Overlay

	results   <-chan library.Result
	stopWatch context.CancelFunc
	watchDone chan struct{}

	width, height int
}

// New scans the audio directory and builds the player. A directory that
// cannot be read leaves the playlist empty.
func New(cfg *Config) *Game {
	scanner := library.NewScanner(cfg.AudioDir, "")
	res, err := scanner.Scan(context.Background())
	if err != nil {
		log.Error().Err(err).Str("dir", cfg.AudioDir).Msg("error reading audio files")
	} else if skipErr := res.Err(); skipErr != nil {
		log.Warn().Err(skipErr).Int("skipped", len(res.Skipped)).Msg("some audio files were skipped")
	}

	g := &Game{
		comp:      sky.NewCompositor(cfg.SkySettings(), cfg.RNG()),
		canvas:    render.NewCanvas(cfg.Width, cfg.Height),
		painter:   render.NewPainter(),
		clock:     core.NewFrameClock(),
		scanner:   scanner,
		list:      playlist.New(res.Tracks),
		transport: player.NewTransport(player.NewEbitenMedia(nil)),
	}
	g.nowPlaying = ui.NewNowPlaying(g.toggle)
	g.table = ui.NewPlaylistTable(g.list, g.activate)
	g.overlay = ui.NewOverlay(g.comp.Settings().PixelSize)

	if cfg.Watch {
		g.startWatcher()
	}
	log.Info().Int("tracks", g.list.Len()).Str("dir", cfg.AudioDir).Msg("player ready")
	return g
}

func (g *Game) startWatcher() {
	ctx, cancel := context.WithCancel(context.Background())
	w := library.NewWatcher(g.scanner, 0)
	g.results = w.Results()
	g.stopWatch = cancel
	g.watchDone = make(chan struct{})
	go func() {
		defer close(g.watchDone)
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("audio dir watcher stopped")
		}
	}()
}

// Update handles per-frame logic.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggle()
	}

	g.drainResults()
	g.overlay.Update()
	g.table.Update()
	g.nowPlaying.Update()

	panel := panelFor(g.list, g.transport)
	g.nowPlaying.SetTrack(panel.Track, panel.HasTrack)
	g.nowPlaying.SetPlaying(panel.Playing)
	return nil
}

func (g *Game) drainResults() {
	if g.results == nil {
		return
	}
	select {
	case res, ok := <-g.results:
		if !ok {
			g.results = nil
			return
		}
		g.list.Replace(res.Tracks)
		log.Info().Int("tracks", g.list.Len()).Msg("playlist refreshed")
		if src := g.transport.Source(); src != "" && !g.activeIs(src) {
			if err := g.transport.Close(); err != nil {
				log.Warn().Err(err).Str("source", src).Msg("release removed track")
			}
		}
	default:
	}
}

// activeIs reports whether the active track resolves to path.
func (g *Game) activeIs(path string) bool {
	track, ok := g.list.ActiveTrack()
	if !ok {
		return false
	}
	p, err := g.scanner.Resolve(track.AudioFile)
	return err == nil && p == path
}

// activate starts playing row i.
func (g *Game) activate(i int) {
	if err := g.list.SetActive(i); err != nil {
		log.Warn().Err(err).Int("row", i).Msg("activate track")
		return
	}
	track, _ := g.list.ActiveTrack()
	path, err := g.scanner.Resolve(track.AudioFile)
	if err != nil {
		log.Error().Err(err).Msg("resolve track")
		return
	}
	if err := g.transport.Activate(path); err != nil {
		log.Error().Err(err).Str("file", path).Msg("play track")
	}
}

// toggle flips play/pause, loading the active track on first use.
func (g *Game) toggle() {
	err := g.transport.Toggle()
	if !errors.Is(err, player.ErrNoSource) {
		if err != nil {
			log.Error().Err(err).Msg("toggle playback")
		}
		return
	}
	if active := g.list.Active(); active >= 0 {
		g.activate(active)
	}
}

// Draw renders the sky and the widgets.
func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if b.Empty() {
		return
	}
	if b.Dx() != g.canvas.Size().W || b.Dy() != g.canvas.Size().H {
		g.canvas.Resize(b.Dx(), b.Dy())
	}
	g.state = g.comp.Frame(g.state, g.clock.Tick(), g.canvas)
	g.painter.Blit(screen, g.canvas)
	g.overlay.Draw(screen, g.state)

	g.nowPlaying.Draw(screen)
	g.table.Draw(screen)
}

// Layout follows the window size so the sky always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.layoutWidgets()
	}
	return outsideWidth, outsideHeight
}

func (g *Game) layoutWidgets() {
	w := g.width - 2*panelMargin
	if w > 900 {
		w = 900
	}
	left := (g.width - w) / 2
	top := panelMargin
	npHeight := g.nowPlaying.Height()
	g.nowPlaying.SetBounds(image.Rect(left, top, left+w, top+npHeight))
	tableTop := top + npHeight + panelMargin
	g.table.SetBounds(image.Rect(left, tableTop, left+w, g.height-panelMargin))
}

// Close stops the watcher and releases the audio source.
func (g *Game) Close() error {
	if g.stopWatch != nil {
		g.stopWatch()
		<-g.watchDone
	}
	return g.transport.Close()
}
