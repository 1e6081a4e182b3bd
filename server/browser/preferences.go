package browser

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/starudream/e2e-kit/server/internal/json"
)

const (
	profileDir      = "Default"
	preferencesFile = "Preferences"
)

func PreferencesPath(userDataDir string) string {
	return filepath.Join(userDataDir, profileDir, preferencesFile)
}

// WritePreferences merges the options prefs into the profile Preferences file
// of userDataDir, creating the profile when it does not exist yet.
func (o *Options) WritePreferences(userDataDir string) error {
	path := PreferencesPath(userDataDir)

	current := map[string]any{}
	bs, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(bs) > 0 {
			current, err = json.UnmarshalTo[map[string]any](bs)
			if err != nil {
				return eris.Wrapf(err, "parse %s", path)
			}
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return eris.Wrapf(err, "read %s", path)
	}
	// a profile file holding json null decodes to a nil map
	if current == nil {
		current = map[string]any{}
	}

	mergeNested(current, o.NestedPrefs())

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "create profile dir")
	}
	if err = os.WriteFile(path, json.MustMarshal(current), 0o644); err != nil {
		return eris.Wrapf(err, "write %s", path)
	}
	return nil
}

func mergeNested(dst, src map[string]any) {
	for k, v := range src {
		sm, ok1 := v.(map[string]any)
		dm, ok2 := dst[k].(map[string]any)
		if ok1 && ok2 {
			mergeNested(dm, sm)
			continue
		}
		dst[k] = v
	}
}
