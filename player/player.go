package player

import (
	"sync"

	"github.com/oomph-ac/wedisplay/event"
	"github.com/oomph-ac/wedisplay/lang"
	"github.com/oomph-ac/wedisplay/render"
	"github.com/oomph-ac/wedisplay/session"
	"github.com/oomph-ac/wedisplay/settings"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Config holds what a Player shares with the rest of the proxy.
type Config struct {
	// Settings are the global settings of the proxy.
	Settings settings.Settings
	// Store holds the overrides of players. If nil, overrides are kept in memory only.
	Store *settings.Store
	// Lang holds the messages sent to players.
	Lang *lang.Bundle
}

// Player is a client connected to the proxy. It keeps track of the selections the server sent to the
// client and renders them.
type Player struct {
	log        *logrus.Entry
	conn       Conn
	serverConn ServerConn
	conf       Config

	// mu guards the fields below. Frames, commands and refreshes are applied while it is held.
	mu         sync.Mutex
	sel        *session.Selections
	state      *render.State
	sink       *packetSink
	dispatcher *event.Dispatcher
	override   *settings.Override
	language   string

	renderingEnabled atomic.Bool
	cuiEnabled       atomic.Bool
	closed           atomic.Bool

	hMutex sync.RWMutex
	h      Handler
}

// NewPlayer creates a new player for the connections passed. The override of the player is loaded from
// the store in the config.
func NewPlayer(log *logrus.Logger, conf Config, conn Conn, serverConn ServerConn) *Player {
	p := &Player{
		conn:       conn,
		serverConn: serverConn,
		conf:       conf,
		sel:        session.NewSelections(),
		override:   &settings.Override{},
		h:          NopHandler{},
	}
	p.log = log.WithField("player", p.Name())
	p.sink = newPacketSink(p)
	p.state = render.NewState(p.sink)
	p.dispatcher = event.NewDispatcher(target{p: p})

	if conf.Store != nil {
		o, err := conf.Store.Load(p.XUID())
		if err != nil {
			p.log.Warnf("using default settings: %v", err)
		}
		p.override = o
	}
	p.renderingEnabled.Store(conf.Settings.Display.RenderingEnabled)
	if p.override.Rendering != nil {
		p.renderingEnabled.Store(*p.override.Rendering)
	}
	p.language = p.initialLanguage()
	return p
}

// initialLanguage picks the language the player chose before, then the language of the client, then
// the default language.
func (p *Player) initialLanguage() string {
	b := p.conf.Lang
	if b == nil {
		return p.override.Language
	}
	if b.Has(p.override.Language) {
		return b.Name(p.override.Language)
	}
	if code := p.conn.ClientData().LanguageCode; b.Has(code) {
		return b.Name(code)
	}
	return b.Default()
}

// Config returns the config of the player.
func (p *Player) Config() Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conf
}

// SetConfig replaces the config of the player, such as after the settings of the proxy were reloaded,
// and renders the selections of the player again.
func (p *Player) SetConfig(conf Config) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.conf = conf
	if p.override.Rendering == nil {
		p.renderingEnabled.Store(conf.Settings.Display.RenderingEnabled)
	}
	p.language = p.initialLanguage()
	p.refresh()
}

// Name returns the display name of the player.
func (p *Player) Name() string {
	return p.conn.IdentityData().DisplayName
}

// XUID returns the XUID of the player. Offline players use their display name instead.
func (p *Player) XUID() string {
	if xuid := p.conn.IdentityData().XUID; xuid != "" {
		return xuid
	}
	return p.Name()
}

// Log returns the logger of the player.
func (p *Player) Log() *logrus.Entry {
	return p.log
}

// Language returns the language messages are sent to the player in.
func (p *Player) Language() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.language
}

// Selections returns the selections of the player. The value returned must not be used while frames
// may be handled.
func (p *Player) Selections() *session.Selections {
	return p.sel
}

// RenderingEnabled returns true if the selections of the player are rendered.
func (p *Player) RenderingEnabled() bool {
	return p.renderingEnabled.Load()
}

// NativeCUI returns true if the client announced that it renders selections itself.
func (p *Player) NativeCUI() bool {
	return p.cuiEnabled.Load()
}

// Rendered returns the amount of selections currently rendered for the player.
func (p *Player) Rendered() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Count()
}

// Refresh renders the selections of the player again.
func (p *Player) Refresh() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refresh()
}

// ClearRender stops rendering every selection of the player. The selections are kept.
func (p *Player) ClearRender() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Clear()
}

// SetRendering turns rendering for the player on or off and stores the choice.
func (p *Player) SetRendering(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setRendering(enabled)
}

func (p *Player) setRendering(enabled bool) {
	p.renderingEnabled.Store(enabled)
	p.override.Rendering = &enabled
	p.save()
	p.refresh()
}

// refresh brings what is rendered in line with the selections. It must be called with mu held.
func (p *Player) refresh() {
	if p.cuiEnabled.Load() {
		return
	}
	if !p.renderingEnabled.Load() {
		p.state.Clear()
		return
	}
	p.state.Update(p.sel, p.conf.Settings.Resolve(p.override))
}

// save writes the override of the player to the store. It must be called with mu held.
func (p *Player) save() {
	if p.conf.Store != nil {
		p.conf.Store.SaveAsync(p.XUID(), p.override)
	}
}

// Handle sets the handler of the player.
func (p *Player) Handle(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	p.hMutex.Lock()
	p.h = h
	p.hMutex.Unlock()
}

// handler returns the handler of the player.
func (p *Player) handler() Handler {
	p.hMutex.RLock()
	defer p.hMutex.RUnlock()
	return p.h
}

// Close closes the connections of the player. Calling Close more than once has no effect.
func (p *Player) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	p.handler().HandleQuit(p)

	p.mu.Lock()
	p.sel.ClearAll()
	p.mu.Unlock()

	if err := p.conn.Close(); err != nil {
		return err
	}
	if p.serverConn != nil {
		return p.serverConn.Close()
	}
	return nil
}

// target is the event.Target of a Player. Its methods are called by the dispatcher while mu is held.
type target struct {
	p *Player
}

func (t target) Selections() *session.Selections { return t.p.sel }
func (t target) ClearRender()                    { t.p.state.Clear() }
func (t target) Refresh()                        { t.p.refresh() }
