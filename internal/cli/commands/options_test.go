package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rmera/ffconv/internal/config"
)

func TestLoggerColor(Te *testing.T) {
	O := new(Options)
	cfg := config.DefaultConfig()
	for mode, coloured := range map[string]bool{config.ColorNever: false, config.ColorAlways: true} {
		cfg.Color = mode
		var b bytes.Buffer
		log := O.Logger(&b, cfg)
		log.Warn().Str("file", "lig.frcmod").Msg("conversion stopped")
		if got := strings.Contains(b.String(), "\x1b["); got != coloured {
			Te.Errorf("color %s: escape codes in the log: %v\n%q", mode, got, b.String())
		}
		if !strings.Contains(b.String(), "conversion stopped") {
			Te.Errorf("color %s: message not logged: %q", mode, b.String())
		}
	}
}
