package player

import (
	"errors"
	"strings"

	"github.com/oomph-ac/wedisplay/settings"
	"github.com/samber/lo"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// commandName is the name of the command players use to change their render settings.
const commandName = "wedisplay"

// ExecuteCommand runs the wedisplay command with the arguments passed for the player.
func (p *Player) ExecuteCommand(args []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(args) == 0 {
		p.message("command.help")
		return
	}
	switch strings.ToLower(args[0]) {
	case "set":
		p.commandSet(args[1:])
	case "reset":
		p.commandReset(args[1:])
	case "show":
		p.commandShow(args[1:])
	case "reloadplayer":
		p.commandReload()
	case "lang", "language":
		p.commandLang(args[1:])
	case "toggle":
		p.setRendering(!p.renderingEnabled.Load())
		if p.renderingEnabled.Load() {
			p.message("command.toggle.enabled")
		} else {
			p.message("command.toggle.disabled")
		}
	default:
		p.message("command.help")
	}
}

func shapeList() string {
	return strings.Join(settings.Shapes(), ", ")
}

func validShape(shape string) bool {
	return lo.Contains(settings.Shapes(), strings.ToLower(shape))
}

func (p *Player) commandSet(args []string) {
	if len(args) < 3 {
		p.message("command.set.usage")
		p.message("command.set.example")
		return
	}
	shape, key, value := strings.ToLower(args[0]), strings.ToLower(args[1]), args[2]
	if !validShape(shape) {
		p.message("command.set.invalid_renderer", shapeList())
		return
	}

	err := p.override.Set(p.conf.Settings.Limits, shape, key, value)
	var verr settings.ValidationError
	if errors.As(err, &verr) {
		p.log.Warnf("rejected setting change: %v", verr)
		switch verr.Reason {
		case settings.ReasonUnknownShape:
			p.message("command.set.invalid_renderer", shapeList())
		case settings.ReasonUnknownSetting:
			p.message("command.set.unknown_setting", key, shape)
		case settings.ReasonServerOnly:
			p.message("command.set.server_only", key)
		case settings.ReasonOutOfRange:
			p.message("command.set.out_of_range", key, verr.Range.Min, verr.Range.Max)
		default:
			p.message("command.set.invalid_value", value, key)
		}
		return
	} else if err != nil {
		p.log.Errorf("unable to change setting: %v", err)
		return
	}
	p.save()
	p.message("command.set.success", shape, key, value)
	p.refresh()
}

func (p *Player) commandReset(args []string) {
	if len(args) < 1 {
		p.message("command.reset.usage")
		return
	}
	shape := strings.ToLower(args[0])
	if !validShape(shape) {
		p.message("command.reset.invalid_renderer", shapeList())
		return
	}
	if len(args) > 1 {
		key := strings.ToLower(args[1])
		p.override.Reset(shape, key)
		p.message("command.reset.success_setting", shape, key)
	} else {
		p.override.ResetShape(shape)
		p.message("command.reset.success_all", shape)
	}
	p.save()
	p.refresh()
}

func (p *Player) commandShow(args []string) {
	if len(args) == 0 {
		p.message("command.show.title")
		p.message("command.show.available", shapeList())
		return
	}
	shape := strings.ToLower(args[0])
	if !validShape(shape) {
		p.message("command.show.invalid_renderer", shapeList())
		return
	}
	r := p.conf.Settings.Resolve(p.override)
	lines := []string{p.translate("command.show.renderer_title", shape)}
	for _, key := range settings.Keys(shape) {
		v, _ := r.Get(shape, key)
		lines = append(lines, p.translate("command.show.entry", key, v))
	}
	p.Message(strings.Join(lines, "\n"))
}

func (p *Player) commandReload() {
	if p.conf.Store == nil {
		p.message("command.reload.failed")
		return
	}
	o, err := p.conf.Store.Load(p.XUID())
	if err != nil {
		p.log.Warnf("unable to reload settings: %v", err)
		p.message("command.reload.failed")
		return
	}
	p.override = o
	p.renderingEnabled.Store(p.conf.Settings.Display.RenderingEnabled)
	if o.Rendering != nil {
		p.renderingEnabled.Store(*o.Rendering)
	}
	p.language = p.initialLanguage()
	p.message("command.reload.success")
	p.refresh()
}

func (p *Player) commandLang(args []string) {
	b := p.conf.Lang
	if b == nil {
		return
	}
	available := strings.Join(b.Available(), ", ")
	if len(args) == 0 {
		p.message("command.lang.current", p.language)
		p.message("command.lang.usage", available)
		return
	}
	if !b.Has(args[0]) {
		p.message("command.lang.invalid", available)
		return
	}
	p.language = b.Name(args[0])
	p.override.Language = p.language
	p.save()
	p.message("command.lang.success", p.language)
}

// registerCommand adds the wedisplay command to the commands the server sends, so that the client
// suggests it.
func (p *Player) registerCommand(pk *packet.AvailableCommands) {
	for _, c := range pk.Commands {
		if c.Name == commandName {
			return
		}
	}

	// Looks up or creates a static enum and returns its index in pk.Enums.
	enum := func(enumType string, options []string) uint32 {
		for i, e := range pk.Enums {
			if e.Type == enumType {
				return uint32(i)
			}
		}
		valueIndex := make(map[string]uint32, len(pk.EnumValues))
		for i, v := range pk.EnumValues {
			valueIndex[v] = uint32(i)
		}
		indices := make([]uint, 0, len(options))
		for _, opt := range options {
			idx, ok := valueIndex[opt]
			if !ok {
				idx = uint32(len(pk.EnumValues))
				pk.EnumValues = append(pk.EnumValues, opt)
				valueIndex[opt] = idx
			}
			indices = append(indices, uint(idx))
		}
		pk.Enums = append(pk.Enums, protocol.CommandEnum{Type: enumType, ValueIndices: indices})
		return uint32(len(pk.Enums) - 1)
	}
	// Sub-commands are single-option enums, the way dragonfly encodes cmd.SubCommand.
	sub := func(name string) protocol.CommandParameter {
		return enumParam(name, enum(commandName+":"+name, []string{name}), false)
	}
	shape := enumParam("shape", enum(commandName+":shape", settings.Shapes()), false)

	overloads := []protocol.CommandOverload{
		{Parameters: []protocol.CommandParameter{sub("set"), shape,
			normalParam("setting", protocol.CommandArgTypeString, false),
			normalParam("value", protocol.CommandArgTypeString, false),
		}},
		{Parameters: []protocol.CommandParameter{sub("reset"), shape,
			normalParam("setting", protocol.CommandArgTypeString, true),
		}},
		{Parameters: []protocol.CommandParameter{sub("show"),
			enumParam("shape", enum(commandName+":shape", settings.Shapes()), true),
		}},
		{Parameters: []protocol.CommandParameter{sub("reloadplayer")}},
		{Parameters: []protocol.CommandParameter{sub("lang"),
			normalParam("language", protocol.CommandArgTypeString, true),
		}},
		{Parameters: []protocol.CommandParameter{sub("toggle")}},
		{Parameters: []protocol.CommandParameter{sub("help")}},
	}

	pk.Commands = append(pk.Commands, protocol.Command{
		Name:                     commandName,
		Description:              "Change how WorldEdit selections are displayed",
		AliasesOffset:            ^uint32(0),
		ChainedSubcommandOffsets: []uint16{},
		Overloads:                overloads,
	})
}

func enumParam(name string, enumIndex uint32, optional bool) protocol.CommandParameter {
	return protocol.CommandParameter{
		Name:     name,
		Type:     protocol.CommandArgValid | protocol.CommandArgEnum | enumIndex,
		Optional: optional,
	}
}

func normalParam(name string, pType uint32, optional bool) protocol.CommandParameter {
	return protocol.CommandParameter{
		Name:     name,
		Type:     protocol.CommandArgValid | pType,
		Optional: optional,
	}
}
