// This file is part of sdl4go.
//
// sdl4go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdl4go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdl4go.  If not, see <https://www.gnu.org/licenses/>.

package system

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/sdl4go/cdrom"
	"github.com/jetsetilly/sdl4go/event"
	"github.com/jetsetilly/sdl4go/logger"
	"github.com/jetsetilly/sdl4go/paths"
	"github.com/jetsetilly/sdl4go/prefs"
	"github.com/jetsetilly/sdl4go/sdlerr"
	"github.com/veandco/go-sdl2/sdl"
)

// PrefsFile is the name of the preferences file in the resource directory.
const PrefsFile = "preferences"

// Error patterns for configuration.
const (
	ConfigError = "system: config: %v"
)

// Config defines and collates the preference values that affect how the
// library is initialised.
type Config struct {
	dsk *prefs.Disk

	// empty strings leave the choice to SDL
	VideoDriver prefs.String
	AudioDriver prefs.String

	// key repeat in milliseconds. a delay of zero disables key repeat
	KeyRepeatDelay    prefs.Int
	KeyRepeatInterval prefs.Int

	AllowScreensaver   prefs.Bool
	JoystickBackground prefs.Bool

	// additional device paths for CD-ROM drives. separated by the list
	// separator of the operating system
	CDROMPaths prefs.String
}

func (cfg *Config) String() string {
	return cfg.dsk.Path()
}

// NewConfig is the preferred method of initialisation for the Config type. If
// the path is empty then the preferences file in the resource directory is
// used. Values are loaded from the file if it exists.
func NewConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		var err error
		path, err = paths.ResourcePath("", PrefsFile)
		if err != nil {
			return nil, sdlerr.Errorf(ConfigError, err)
		}
	}

	var err error
	cfg.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, sdlerr.Errorf(ConfigError, err)
	}

	if err := cfg.SetDefaults(); err != nil {
		return nil, err
	}

	entries := []struct {
		key string
		p   interface {
			String() string
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
		}
	}{
		{"video.driver", &cfg.VideoDriver},
		{"audio.driver", &cfg.AudioDriver},
		{"keyboard.repeat.delay", &cfg.KeyRepeatDelay},
		{"keyboard.repeat.interval", &cfg.KeyRepeatInterval},
		{"video.screensaver", &cfg.AllowScreensaver},
		{"joystick.background", &cfg.JoystickBackground},
		{"cdrom.paths", &cfg.CDROMPaths},
	}
	for _, e := range entries {
		if err := cfg.dsk.Add(e.key, e.p); err != nil {
			return nil, sdlerr.Errorf(ConfigError, err)
		}
	}

	if err := cfg.dsk.Load(false); err != nil {
		return nil, sdlerr.Errorf(ConfigError, err)
	}

	return cfg, nil
}

// SetDefaults reverts all values to their default values.
func (cfg *Config) SetDefaults() error {
	if err := cfg.VideoDriver.Set(""); err != nil {
		return sdlerr.Errorf(ConfigError, err)
	}
	if err := cfg.AudioDriver.Set(""); err != nil {
		return sdlerr.Errorf(ConfigError, err)
	}
	if err := cfg.KeyRepeatDelay.Set(0); err != nil {
		return sdlerr.Errorf(ConfigError, err)
	}
	if err := cfg.KeyRepeatInterval.Set(event.DefaultRepeatInterval); err != nil {
		return sdlerr.Errorf(ConfigError, err)
	}
	if err := cfg.AllowScreensaver.Set(false); err != nil {
		return sdlerr.Errorf(ConfigError, err)
	}
	if err := cfg.JoystickBackground.Set(false); err != nil {
		return sdlerr.Errorf(ConfigError, err)
	}
	if err := cfg.CDROMPaths.Set(""); err != nil {
		return sdlerr.Errorf(ConfigError, err)
	}
	return nil
}

// Load values from disk.
func (cfg *Config) Load() error {
	if err := cfg.dsk.Load(false); err != nil {
		return sdlerr.Errorf(ConfigError, err)
	}
	return nil
}

// Save values to disk.
func (cfg *Config) Save() error {
	if err := cfg.dsk.Save(); err != nil {
		return sdlerr.Errorf(ConfigError, err)
	}
	return nil
}

// hints set by Apply()
func boolHint(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// Apply the configuration. Drivers and hints are only effective if Apply() is
// called before Init(). If the queue is not nil then key repeat is set for the
// queue.
func (cfg *Config) Apply(q *event.Queue) error {
	if d := cfg.VideoDriver.String(); d != "" {
		if err := os.Setenv("SDL_VIDEODRIVER", d); err != nil {
			return sdlerr.Errorf(ConfigError, err)
		}
		logger.Logf(logger.Allow, "system", "video driver: %s", d)
	}
	if d := cfg.AudioDriver.String(); d != "" {
		if err := os.Setenv("SDL_AUDIODRIVER", d); err != nil {
			return sdlerr.Errorf(ConfigError, err)
		}
		logger.Logf(logger.Allow, "system", "audio driver: %s", d)
	}

	sdl.SetHint(sdl.HINT_VIDEO_ALLOW_SCREENSAVER, boolHint(cfg.AllowScreensaver.Get().(bool)))
	sdl.SetHint(sdl.HINT_JOYSTICK_ALLOW_BACKGROUND_EVENTS, boolHint(cfg.JoystickBackground.Get().(bool)))

	if p := cfg.CDROMPaths.String(); p != "" {
		cdrom.AddDevicePaths(filepath.SplitList(p)...)
	}

	if q != nil {
		delay := cfg.KeyRepeatDelay.Get().(int)
		interval := cfg.KeyRepeatInterval.Get().(int)
		if err := q.EnableKeyRepeat(delay, interval); err != nil {
			return sdlerr.Errorf(ConfigError, err)
		}
	}

	return nil
}
