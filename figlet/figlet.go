// Package figlet renders ASCII art text with the go-figure font pack and
// fits the result to a width constraint.
package figlet

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/common-nighthawk/go-figure"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"

	"github.com/jcubic/atm/banner"
)

// DefaultFont is used when a request does not name a font.
const DefaultFont = "standard"

// bundledFonts are the go-figure fonts the renderer accepts. The library has
// no listing API, so the names are maintained here.
var bundledFonts = []string{
	"3-d",
	"alphabet",
	"banner",
	"basic",
	"big",
	"block",
	"bubble",
	"bulbhead",
	"colossal",
	"cyberlarge",
	"digital",
	"doh",
	"doom",
	"dotmatrix",
	"epic",
	"isometric1",
	"larry3d",
	"lean",
	"letters",
	"mini",
	"nancyj",
	"ogre",
	"rectangles",
	"roman",
	"rounded",
	"script",
	"shadow",
	"slant",
	"small",
	"smscript",
	"smshadow",
	"smslant",
	"speed",
	"standard",
	"starwars",
	"stop",
	"term",
	"thick",
	"thin",
	"univers",
	"weird",
}

// cacheKey identifies one rendered frame. banner.Options is comparable, so
// the pair works directly as an LRU key.
type cacheKey struct {
	text string
	opts banner.Options
}

// Renderer generates figlet art. It caches recent renders so a resize storm
// does not re-render identical frames, and it supports custom fonts loaded
// at runtime. It implements banner.Generator.
type Renderer struct {
	cache  *lru.Cache[cacheKey, string]
	custom map[string][]byte
}

// NewRenderer creates a renderer with the bundled font set.
func NewRenderer() *Renderer {
	cache, _ := lru.New[cacheKey, string](256)
	return &Renderer{
		cache:  cache,
		custom: make(map[string][]byte),
	}
}

// Fonts returns the names of all usable fonts, sorted.
func (r *Renderer) Fonts() []string {
	names := make([]string, 0, len(bundledFonts)+len(r.custom))
	names = append(names, bundledFonts...)
	for name := range r.custom {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFont registers a custom figlet font (.flf contents) under the given
// name. The font is validated by rendering a probe string.
func (r *Renderer) LoadFont(name string, data []byte) error {
	if name == "" {
		return errors.New("figlet: empty font name")
	}
	if len(data) == 0 {
		return fmt.Errorf("figlet: font %q: empty font data", name)
	}
	if _, err := renderCustom("a", name, data); err != nil {
		return err
	}
	r.custom[name] = data
	return nil
}

// Render implements banner.Generator. When opts.Width is positive and the
// art would be wider, the input is re-wrapped into segments that each fit
// and the segments are stacked vertically.
func (r *Renderer) Render(text string, opts banner.Options) (string, error) {
	if text == "" {
		return "", nil
	}
	if opts.Font == "" {
		opts.Font = DefaultFont
	}

	key := cacheKey{text: text, opts: opts}
	if art, ok := r.cache.Get(key); ok {
		return art, nil
	}

	segments := []string{text}
	if opts.Width > 0 {
		var err error
		segments, err = r.splitToWidth(text, opts)
		if err != nil {
			return "", err
		}
	}

	var lines []string
	for _, seg := range segments {
		segLines, err := r.renderLines(seg, opts.Font)
		if err != nil {
			return "", err
		}
		lines = append(lines, segLines...)
	}

	lines = applyVertical(lines, opts.VerticalLayout)
	lines = applyHorizontal(lines, opts.HorizontalLayout)

	art := strings.Join(lines, "\n")
	r.cache.Add(key, art)
	return art, nil
}

// renderLines produces the raw art lines for text in the named font.
// go-figure panics on malformed input in strict mode; the recover turns
// that into an error so callers always get the degrade-to-plain-text path.
func (r *Renderer) renderLines(text, font string) (lines []string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("figlet: font %q: %v", font, p)
		}
	}()

	if data, ok := r.custom[font]; ok {
		return renderCustom(text, font, data)
	}
	if !isBundled(font) {
		return nil, fmt.Errorf("figlet: unknown font %q", font)
	}
	fig := figure.NewFigure(text, font, true)
	return fig.Slicify(), nil
}

func renderCustom(text, name string, data []byte) (lines []string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("figlet: font %q: %v", name, p)
		}
	}()
	fig := figure.NewFigureWithFont(text, bytes.NewReader(data), true)
	return fig.Slicify(), nil
}

func isBundled(font string) bool {
	for _, name := range bundledFonts {
		if name == font {
			return true
		}
	}
	return false
}

// splitToWidth breaks text into segments whose rendered art each fits in
// opts.Width columns. Breaking happens on whitespace when requested,
// otherwise between any two runes. A single unit that cannot fit on its own
// is kept whole; there is nothing smaller to break it into.
func (r *Renderer) splitToWidth(text string, opts banner.Options) ([]string, error) {
	var units []string
	joiner := ""
	if opts.WhitespaceBreak {
		units = strings.Fields(text)
		joiner = " "
	} else {
		for _, ru := range text {
			units = append(units, string(ru))
		}
	}
	if len(units) == 0 {
		return []string{text}, nil
	}

	var segments []string
	current := ""
	for _, unit := range units {
		candidate := unit
		if current != "" {
			candidate = current + joiner + unit
		}
		w, err := r.artWidth(candidate, opts.Font)
		if err != nil {
			return nil, err
		}
		if w > opts.Width && current != "" {
			segments = append(segments, current)
			current = unit
			continue
		}
		current = candidate
	}
	if current != "" {
		segments = append(segments, current)
	}
	return segments, nil
}

// artWidth measures the widest line of the rendered art, ignoring trailing
// padding.
func (r *Renderer) artWidth(text, font string) (int, error) {
	lines, err := r.renderLines(text, font)
	if err != nil {
		return 0, err
	}
	widest := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(strings.TrimRight(line, " ")); w > widest {
			widest = w
		}
	}
	return widest, nil
}

func applyHorizontal(lines []string, layout banner.Layout) []string {
	switch layout {
	case banner.LayoutFitted:
		out := make([]string, len(lines))
		for i, line := range lines {
			out[i] = strings.TrimRight(line, " ")
		}
		return out
	case banner.LayoutFull:
		widest := 0
		for _, line := range lines {
			if w := runewidth.StringWidth(line); w > widest {
				widest = w
			}
		}
		out := make([]string, len(lines))
		for i, line := range lines {
			if pad := widest - runewidth.StringWidth(line); pad > 0 {
				line += strings.Repeat(" ", pad)
			}
			out[i] = line
		}
		return out
	default:
		return lines
	}
}

func applyVertical(lines []string, layout banner.Layout) []string {
	if layout != banner.LayoutFitted {
		return lines
	}
	out := lines[:0:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
