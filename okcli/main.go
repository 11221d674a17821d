package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/npillmayer/okanimoji/core/font/fontregistry"
	"github.com/npillmayer/okanimoji/core/parameters"
	"github.com/npillmayer/okanimoji/engine/pipeline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'okanimoji.cli'
func tracer() tracing.Trace {
	return tracing.Select("okanimoji.cli")
}

// traceKeys are the trace keys of all packages of okanimoji.
var traceKeys = []string{
	"okanimoji.cli",
	"okanimoji.fonts",
	"okanimoji.resources",
	"okanimoji.raster",
	"okanimoji.quantize",
	"okanimoji.compose",
	"okanimoji.pipeline",
	"okanimoji.export",
}

// fallbackFont is used if the configured font cannot be found at startup.
const fallbackFont = "go-regular"

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.String(parameters.P_FONT, "", "Font to render with")
	flag.Int(parameters.P_WIDTH, 0, "Maximum width of the art, in columns")
	flag.Int(parameters.P_MINHEIGHT, 0, "Preferred height of the art, in rows")
	flag.Int(parameters.P_SHADOW, 0, "Shadow offset, 0 for no shadow")
	flag.Float64(parameters.P_PTSIZE, 0, "Point size for rasterizing glyphs")
	flag.Bool(parameters.P_MARGIN, false, "Keep a margin at the right")
	flag.String(parameters.P_MANIFEST, "", "Font manifest (fonts.toml)")
	flag.String(parameters.P_FONTDIR, "", "Directory to search for font files")
	flag.Parse()
	level := tracing.TraceLevelFromString(*tlevel)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	pterm.Info.Println("Welcome to okanimoji") // colored welcome message
	//
	// parameters from flags explicitly set
	flagconf := testconfig.Conf{}
	flag.Visit(func(f *flag.Flag) {
		if f.Name != "trace" {
			flagconf[f.Name] = f.Value.String()
		}
	})
	params, err := parameters.FromConfig(flagconf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	tracer().Infof("parameters: %s", params)
	catalog, err := pipeline.Catalog(params)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	intp := NewIntp(pipeline.NewRenderer(fontregistry.NewRegistry(catalog), params), os.Stdout)
	if _, err := intp.renderer.Registry.Font(params.Font); err != nil {
		pterm.Warning.Printfln("%s, using font %s", err.Error(), fallbackFont)
		intp.renderer.Params.Font = fallbackFont
	}
	//
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       intp.prompt(),
		AutoComplete: intp.completer(),
		HistoryFile:  filepath.Join(os.TempDir(), "okanimoji.history"),
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	defer repl.Close()
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Enter text to render, :help for commands, q to quit")
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
