package wedisplay

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/wedisplay/lang"
	"github.com/oomph-ac/wedisplay/oerror"
	"github.com/oomph-ac/wedisplay/player"
	"github.com/oomph-ac/wedisplay/settings"
	"github.com/sandertv/gophertunnel/minecraft"
	"github.com/sirupsen/logrus"
)

// HandshakeDelay is the time after joining at which the server is told that a player can display
// selections.
const HandshakeDelay = time.Second

// Proxy sits between players and a server, rendering the selections the server sends to them.
type Proxy struct {
	log      *logrus.Logger
	settings settings.Settings

	playerChan chan *player.Player
	done       chan struct{}
	players    sync.Map

	mu       sync.Mutex
	conf     player.Config
	listener *minecraft.Listener
	closed   bool
}

// New returns a new Proxy with the settings passed. Start must be called for players to be able to
// connect.
func New(log *logrus.Logger, s settings.Settings) *Proxy {
	return &Proxy{
		log:        log,
		settings:   s,
		playerChan: make(chan *player.Player),
		done:       make(chan struct{}),
	}
}

// Accept accepts an incoming player into the proxy. It blocks until a player joins, and returns an error
// once the proxy is closed.
func (p *Proxy) Accept() (*player.Player, error) {
	select {
	case pl := <-p.playerChan:
		return pl, nil
	case <-p.done:
		return nil, oerror.New("wedisplay shutdown")
	}
}

// Players returns every player currently connected.
func (p *Proxy) Players() []*player.Player {
	var players []*player.Player
	p.players.Range(func(_, v any) bool {
		players = append(players, v.(*player.Player))
		return true
	})
	return players
}

// Player returns the connected player with the XUID passed.
func (p *Proxy) Player(xuid string) (*player.Player, bool) {
	v, ok := p.players.Load(xuid)
	if !ok {
		return nil, false
	}
	return v.(*player.Player), true
}

// Config builds the player.Config shared by every player from the settings of the proxy.
func (p *Proxy) Config() (player.Config, error) {
	p.mu.Lock()
	s := p.settings
	p.mu.Unlock()
	return p.buildConfig(s)
}

func (p *Proxy) buildConfig(s settings.Settings) (player.Config, error) {
	if err := s.Validate(); err != nil {
		return player.Config{}, err
	}
	b, err := lang.New(s.Display.DefaultLanguage)
	if err != nil {
		return player.Config{}, fmt.Errorf("unable to load languages: %w", err)
	}
	if dir := s.Display.LangDir; dir != "" {
		if err := b.LoadDir(dir); err != nil {
			return player.Config{}, fmt.Errorf("unable to load languages from %s: %w", dir, err)
		}
	}
	return player.Config{
		Settings: s,
		Store:    settings.NewStore(s.Display.PlayerDataDir, p.log),
		Lang:     b,
	}, nil
}

// Reload reads the settings file at the path passed and applies it. The proxy keeps its current settings
// if the file cannot be loaded.
func (p *Proxy) Reload(path string) error {
	s, err := settings.Load(path)
	if err != nil {
		return err
	}
	return p.Apply(s)
}

// Apply replaces the render settings and languages of the proxy and of every connected player, whose
// selections are then rendered again. Addresses only take effect when the proxy is started again.
func (p *Proxy) Apply(s settings.Settings) error {
	conf, err := p.buildConfig(s)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.settings, p.conf = s, conf
	p.mu.Unlock()

	players := p.Players()
	for _, pl := range players {
		pl.SetConfig(conf)
	}
	p.log.Infof("settings reloaded for %d players", len(players))
	return nil
}

// config returns the player.Config new players get, and the address of the server.
func (p *Proxy) config() (player.Config, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conf, p.settings.Proxy.RemoteAddress
}

// removePlayer removes the player passed, unless another session of the same XUID already replaced it.
func (p *Proxy) removePlayer(pl *player.Player) {
	p.players.CompareAndDelete(pl.XUID(), pl)
}

// Start starts the proxy. It listens on the local address in the settings and forwards every connection
// to the remote address. Start blocks until the proxy is closed.
func (p *Proxy) Start() error {
	select {
	case <-p.done:
		return oerror.New("wedisplay shutdown")
	default:
	}
	conf, err := p.Config()
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.conf = conf
	local, remote := p.settings.Proxy.LocalAddress, p.settings.Proxy.RemoteAddress
	p.mu.Unlock()

	status, err := minecraft.NewForeignStatusProvider(remote)
	if err != nil {
		return fmt.Errorf("unable to query %s: %w", remote, err)
	}
	l, err := minecraft.ListenConfig{
		StatusProvider:      status,
		AllowUnknownPackets: true,
		AllowInvalidPackets: true,
	}.Listen("raknet", local)
	if err != nil {
		return err
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		_ = l.Close()
		return oerror.New("wedisplay shutdown")
	}
	p.listener = l
	p.mu.Unlock()

	p.log.Infof("wedisplay is now listening on %v and directing connections to %v", local, remote)
	for {
		c, err := l.Accept()
		if err != nil {
			p.log.Debugf("listener closed: %v", err)
			return nil
		}
		go p.handleConn(c.(*minecraft.Conn), l)
	}
}

// Close closes the listener of the proxy. Players already connected stay connected until they leave.
func (p *Proxy) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.done)
	if p.listener != nil {
		return p.listener.Close()
	}
	return nil
}

// handleConn handles a new incoming minecraft.Conn from the minecraft.Listener passed.
func (p *Proxy) handleConn(conn *minecraft.Conn, listener *minecraft.Listener) {
	defer sentry.Recover()

	conf, remote := p.config()
	serverConn, err := minecraft.Dialer{
		IdentityData: conn.IdentityData(),
		ClientData:   conn.ClientData(),
	}.Dial("raknet", remote)
	if err != nil {
		p.log.Errorf("unable to connect %s to the server: %v", conn.IdentityData().DisplayName, err)
		_ = listener.Disconnect(conn, "unable to reach the server")
		return
	}

	var g sync.WaitGroup
	var spawnErr error
	var spawnMu sync.Mutex
	fail := func(err error) {
		spawnMu.Lock()
		spawnErr = errors.Join(spawnErr, err)
		spawnMu.Unlock()
	}
	g.Add(2)
	go func() {
		defer g.Done()
		if err := conn.StartGame(serverConn.GameData()); err != nil {
			fail(err)
		}
	}()
	go func() {
		defer g.Done()
		if err := serverConn.DoSpawn(); err != nil {
			fail(err)
		}
	}()
	g.Wait()
	if spawnErr != nil {
		p.log.Debugf("unable to spawn %s: %v", conn.IdentityData().DisplayName, spawnErr)
		_ = listener.Disconnect(conn, "connection lost")
		_ = serverConn.Close()
		return
	}

	pl := player.NewPlayer(p.log, conf, conn, serverConn)
	p.players.Store(pl.XUID(), pl)
	defer p.removePlayer(pl)

	select {
	case p.playerChan <- pl:
	case <-p.done:
	}

	handshake := time.AfterFunc(HandshakeDelay, pl.Handshake)
	defer handshake.Stop()

	g.Add(2)
	go func() {
		defer sentry.Recover()
		defer func() {
			_ = listener.Disconnect(conn, "connection lost")
			_ = serverConn.Close()
			g.Done()
		}()
		for {
			pk, err := conn.ReadPacket()
			if err != nil {
				return
			}
			if pl.HandleClientPacket(pk) {
				continue
			}
			if err := serverConn.WritePacket(pk); err != nil {
				var disconnect minecraft.DisconnectError
				if errors.As(err, &disconnect) {
					_ = listener.Disconnect(conn, disconnect.Error())
				}
				return
			}
		}
	}()
	go func() {
		defer sentry.Recover()
		defer func() {
			_ = serverConn.Close()
			_ = listener.Disconnect(conn, "connection lost")
			g.Done()
		}()
		for {
			pk, err := serverConn.ReadPacket()
			if err != nil {
				var disconnect minecraft.DisconnectError
				if errors.As(err, &disconnect) {
					_ = listener.Disconnect(conn, disconnect.Error())
				}
				return
			}
			if pl.HandleServerPacket(pk) {
				continue
			}
			if err := conn.WritePacket(pk); err != nil {
				return
			}
		}
	}()
	g.Wait()
	if err := pl.Close(); err != nil {
		pl.Log().Debugf("error closing connections: %v", err)
	}
}
