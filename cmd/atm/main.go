package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcubic/atm/banner"
	"github.com/jcubic/atm/config"
	"github.com/jcubic/atm/figlet"
	"github.com/jcubic/atm/internal/logging"
	"github.com/jcubic/atm/internal/termsize"
	"github.com/jcubic/atm/ui"
	"github.com/jcubic/atm/ui/style"
)

func main() {
	// Parse flags
	textFlag := flag.String("text", "", "banner text (positional arguments work too)")
	fontFlag := flag.String("font", "", "figlet font name")
	fontFile := flag.String("font-file", "", "load a custom figlet font (.flf) and use it")
	widthFlag := flag.Int("width", 0, "fixed banner width in columns")
	fractionFlag := flag.Float64("fraction", 0, "banner width as a fraction of the terminal width")
	fullFlag := flag.Bool("full", false, "use the full terminal width")
	noResize := flag.Bool("no-resize", false, "keep the width resolved at startup across terminal resizes")
	placeholder := flag.String("placeholder", "", "text shown while the banner is generating")
	onceFlag := flag.Bool("once", false, "print the banner once and exit")
	listFonts := flag.Bool("list-fonts", false, "list available fonts and exit")
	flag.Parse()

	// Defaults, then init.lua, then flags. A broken init.lua is a warning,
	// not a fatal error: the defaults still produce a banner.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "atm: %v\n", err)
	}

	if *textFlag != "" {
		cfg.Text = *textFlag
	}
	if args := flag.Args(); len(args) > 0 {
		cfg.Text = strings.Join(args, " ")
	}
	if *fontFlag != "" {
		cfg.Font = *fontFlag
	}
	if *placeholder != "" {
		cfg.Placeholder = *placeholder
	}
	switch {
	case *widthFlag > 0:
		cfg.Sizing = banner.Fixed(*widthFlag)
	case *fractionFlag > 0:
		cfg.Sizing = banner.ResponsiveFraction(*fractionFlag)
	case *fullFlag:
		cfg.Sizing = banner.Responsive()
	}
	if *noResize {
		cfg.NoResize = true
	}

	gen := figlet.NewRenderer()

	if *fontFile != "" {
		data, err := os.ReadFile(*fontFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "atm: %v\n", err)
			os.Exit(1)
		}
		name := strings.TrimSuffix(filepath.Base(*fontFile), filepath.Ext(*fontFile))
		if err := gen.LoadFont(name, data); err != nil {
			fmt.Fprintf(os.Stderr, "atm: %v\n", err)
			os.Exit(1)
		}
		cfg.Font = name
	}

	if *listFonts {
		for _, name := range gen.Fonts() {
			fmt.Println(name)
		}
		return
	}

	if *onceFlag {
		// No TUI on this path, so stderr is free for log output.
		logger, err := logging.Setup(logging.Options{Console: true, Level: cfg.LogLevel})
		if err != nil {
			fmt.Fprintf(os.Stderr, "atm: %v\n", err)
			os.Exit(1)
		}
		runOnce(cfg, gen, logger)
		return
	}

	logger, err := logging.Setup(logging.Options{Path: config.LogFile(), Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "atm: %v\n", err)
		os.Exit(1)
	}

	if err := ui.Run(cfg, gen, gen.Fonts(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "atm: %v\n", err)
		os.Exit(1)
	}
}

// runOnce renders a single banner at the current terminal width and prints
// it to stdout. Generation failures degrade to the plain text, as in the TUI.
func runOnce(cfg config.Config, gen banner.Generator, logger *slog.Logger) {
	termWidth, _ := termsize.Detect()

	width := 0
	if w, ok := cfg.Sizing.Resolve(termWidth); ok {
		width = w
	}

	ctrl := banner.NewController(gen, logger)
	art := ctrl.GenerateSync(cfg.Text, cfg.Options(width))

	styles := style.Tinted(cfg.Color)
	fmt.Println(styles.Banner.Render(art))
}
