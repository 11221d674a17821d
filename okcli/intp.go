package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/okanimoji/backend/export"
	"github.com/npillmayer/okanimoji/backend/terminal"
	"github.com/npillmayer/okanimoji/core"
	"github.com/npillmayer/okanimoji/engine/pipeline"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	renderer *pipeline.Renderer
	out      io.Writer // art is written here
	last     string    // last text rendered
}

// NewIntp creates an interpreter which prints art to out.
func NewIntp(renderer *pipeline.Renderer, out io.Writer) *Intp {
	return &Intp{renderer: renderer, out: out}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
		intp.repl.SetPrompt(intp.prompt())
	}
	pterm.Info.Println("Good bye!")
}

// Command codes.
const (
	QUIT int = iota
	HELP
	RENDER
	WIDTH
	HEIGHT
	FONT
	SHADOW
	SIZE
	MARGIN
	FONTS
	SAVE
)

// Command is a parsed input line.
type Command struct {
	code int
	arg  string
}

var commands = map[string]int{
	":q":      QUIT,
	":quit":   QUIT,
	":help":   HELP,
	":width":  WIDTH,
	":height": HEIGHT,
	":font":   FONT,
	":shadow": SHADOW,
	":size":   SIZE,
	":margin": MARGIN,
	":fonts":  FONTS,
	":save":   SAVE,
}

var errUnknownCommand = errors.New("unknown command")

func parseCommand(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "q") {
		return &Command{code: QUIT}, nil
	}
	if !strings.HasPrefix(line, ":") {
		return &Command{code: RENDER, arg: line}, nil
	}
	word, arg, _ := strings.Cut(line, " ")
	code, ok := commands[strings.ToLower(word)]
	if !ok {
		return nil, core.WrapError(errUnknownCommand, core.EINVALID, "unknown command %s, try :help", word)
	}
	tracer().Debugf("parse command = %s %q", word, arg)
	return &Command{code: code, arg: strings.TrimSpace(arg)}, nil
}

// Execute interprets one line of input. Lines starting with ':' are commands,
// 'q' quits, everything else is rendered.
func (intp *Intp) Execute(line string) (quit bool, err error) {
	cmd, err := parseCommand(line)
	if err != nil {
		return false, err
	}
	p := &intp.renderer.Params
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case RENDER:
		err = intp.render(cmd.arg)
	case WIDTH:
		err = setInt(&p.Width, cmd.arg, 1, "width")
	case HEIGHT:
		err = setInt(&p.MinHeight, cmd.arg, 0, "height")
	case SHADOW:
		err = setInt(&p.Shadow, cmd.arg, 0, "shadow offset")
	case SIZE:
		var sz float64
		if sz, err = strconv.ParseFloat(cmd.arg, 32); err != nil || sz <= 0 {
			return false, core.Error(core.EINVALID, "point size must be a positive number: %q", cmd.arg)
		}
		p.PtSize = float32(sz)
	case MARGIN:
		switch strings.ToLower(cmd.arg) {
		case "on", "true", "yes", "":
			p.Margin = true
		case "off", "false", "no":
			p.Margin = false
		default:
			return false, core.Error(core.EINVALID, "margin is 'on' or 'off': %q", cmd.arg)
		}
	case FONT:
		err = intp.setFont(cmd.arg)
	case FONTS:
		for _, name := range intp.renderer.Registry.Names() {
			pterm.Println(name)
		}
	case SAVE:
		err = intp.save(cmd.arg)
	}
	if err == nil && cmd.code != RENDER && cmd.code != HELP && cmd.code != FONTS {
		pterm.Info.Println(p.String())
	}
	return false, err
}

func setInt(v *int, arg string, low int, what string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < low {
		return core.Error(core.EINVALID, "%s must be a number ≥ %d: %q", what, low, arg)
	}
	*v = n
	return nil
}

func (intp *Intp) render(text string) error {
	r := *intp.renderer
	r.Params.Width = terminal.Fit(r.Params.Width)
	art, err := r.Render(text)
	if err != nil {
		return err
	}
	intp.last = text
	_, err = io.WriteString(intp.out, art)
	return err
}

func (intp *Intp) setFont(name string) error {
	if name == "" {
		return core.Error(core.EINVALID, "font name missing")
	}
	if _, err := intp.renderer.Registry.Font(name); err != nil {
		return err
	}
	intp.renderer.Params.Font = name
	return nil
}

func (intp *Intp) save(filename string) error {
	if filename == "" {
		return core.Error(core.EINVALID, "file name missing")
	}
	if intp.last == "" {
		return core.Error(core.EMISSING, "nothing rendered yet")
	}
	cov, err := intp.renderer.Raster(intp.last)
	if err != nil {
		return err
	}
	if err = export.SaveFile(filename, cov.Image()); err != nil {
		return err
	}
	pterm.Success.Printfln("saved %q to %s", intp.last, filename)
	return nil
}

func (intp *Intp) prompt() string {
	return fmt.Sprintf("%s > ", intp.renderer.Params.Font)
}

func (intp *Intp) completer() *readline.PrefixCompleter {
	fontNames := func(string) []string {
		return intp.renderer.Registry.Names()
	}
	return readline.NewPrefixCompleter(
		readline.PcItem(":font", readline.PcItemDynamic(fontNames)),
		readline.PcItem(":fonts"),
		readline.PcItem(":width"),
		readline.PcItem(":height"),
		readline.PcItem(":shadow"),
		readline.PcItem(":size"),
		readline.PcItem(":margin", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem(":save"),
		readline.PcItem(":help"),
		readline.PcItem(":quit"),
	)
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	<text>          render text
	:font NAME      switch to font NAME
	:fonts          list known fonts
	:width N        maximum width of the art, in columns
	:height N       preferred height of the art, in rows
	:shadow N       shadow offset, 0 for plain art sized to the width
	:size PT        point size for rasterizing glyphs
	:margin on|off  keep 5 columns free at the right
	:save FILE      save the raster of the last text (.png or .bmp)
	q               quit
	`)
}
