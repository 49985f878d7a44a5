package wedisplay

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/oomph-ac/wedisplay/player"
	"github.com/oomph-ac/wedisplay/settings"
	"github.com/sandertv/gophertunnel/minecraft/protocol/login"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/sirupsen/logrus"
)

type mockConn struct {
	mu      sync.Mutex
	packets []packet.Packet
}

func (c *mockConn) WritePacket(pk packet.Packet) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.packets = append(c.packets, pk)
	return nil
}

func (c *mockConn) Close() error { return nil }

func (c *mockConn) IdentityData() login.IdentityData {
	return login.IdentityData{DisplayName: "Steve", XUID: "1234"}
}

func (c *mockConn) ClientData() login.ClientData {
	return login.ClientData{LanguageCode: "en_US"}
}

func newTestProxy(t *testing.T) (*Proxy, *player.Player) {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	s := settings.DefaultSettings()
	s.Display.PlayerDataDir = t.TempDir()
	p := New(log, s)
	conf, err := p.Config()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pl := player.NewPlayer(log, conf, &mockConn{}, &mockConn{})
	p.players.Store(pl.XUID(), pl)
	return p, pl
}

func TestProxyConfig(t *testing.T) {
	s := settings.DefaultSettings()
	s.Display.PlayerDataDir = t.TempDir()
	conf, err := New(logrus.New(), s).Config()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Store == nil || conf.Lang == nil {
		t.Fatal("expected a store and languages")
	}
	if conf.Lang.Default() != "en_US" {
		t.Fatalf("unexpected default language %q", conf.Lang.Default())
	}

	s.Display.LangDir = t.TempDir()
	if err := os.WriteFile(filepath.Join(s.Display.LangDir, "broken.yml"), []byte("a: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(logrus.New(), s).Config(); err == nil {
		t.Fatal("a broken language file should fail")
	}
}

func TestProxyClose(t *testing.T) {
	p := New(logrus.New(), settings.DefaultSettings())
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("closing twice should not fail: %v", err)
	}
	if _, err := p.Accept(); err == nil {
		t.Fatal("accept should fail once the proxy is closed")
	}
	if len(p.Players()) != 0 {
		t.Fatal("expected no players")
	}
	if _, ok := p.Player("1234"); ok {
		t.Fatal("expected no player")
	}
	if err := p.Start(); err == nil {
		t.Fatal("a closed proxy should not start")
	}
}

func TestProxyReload(t *testing.T) {
	p, pl := newTestProxy(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := p.Reload(path); err == nil {
		t.Fatal("a missing settings file should fail")
	}
	if !pl.RenderingEnabled() {
		t.Fatal("a failed reload should keep the current settings")
	}

	langDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(langDir, "fr_FR.yml"), []byte("command:\n  help: aide\n"), 0644); err != nil {
		t.Fatal(err)
	}
	data := fmt.Sprintf("[Display]\nRenderingEnabled = false\nPlayerDataDir = %q\nLangDir = %q\n", t.TempDir(), langDir)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if err := p.Reload(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pl.RenderingEnabled() {
		t.Fatal("connected players should get the new default")
	}
	if !pl.Config().Lang.Has("fr_FR") {
		t.Fatal("connected players should get the new languages")
	}
	conf, err := p.Config()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Settings.Display.RenderingEnabled || !conf.Lang.Has("fr_FR") {
		t.Fatal("new players should get the reloaded settings")
	}

	broken := settings.DefaultSettings()
	broken.Limits.Thickness = settings.Range{Min: 2, Max: 1}
	if err := p.Apply(broken); err == nil {
		t.Fatal("invalid settings should be rejected")
	}
	if !pl.Config().Lang.Has("fr_FR") {
		t.Fatal("rejected settings should not reach players")
	}
}

func TestRemovePlayer(t *testing.T) {
	p, old := newTestProxy(t)
	conf, _ := p.Config()
	rejoined := player.NewPlayer(logrus.New(), conf, &mockConn{}, &mockConn{})
	p.players.Store(rejoined.XUID(), rejoined)

	p.removePlayer(old)
	if pl, ok := p.Player("1234"); !ok || pl != rejoined {
		t.Fatal("a player leaving should not remove the session that replaced it")
	}
	p.removePlayer(rejoined)
	if _, ok := p.Player("1234"); ok {
		t.Fatal("expected the player to be removed")
	}
}
