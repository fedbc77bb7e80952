package corpus

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jatucker/sitescan/internal/dedup"
)

// LoadSnooze reads the persisted snooze list (normalized titles the
// operator marked "skip always"). A missing file is an empty set, not
// an error.
func LoadSnooze(path string) (dedup.TitleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(dedup.TitleSet), nil
		}
		return nil, fmt.Errorf("reading snooze list: %w", err)
	}

	var keys []string
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("parsing snooze list: %w", err)
	}

	set := make(dedup.TitleSet, len(keys))
	for _, k := range keys {
		set.Add(k)
	}
	return set, nil
}

// SaveSnooze writes the snooze set back as a sorted YAML list. The
// scan only ever grows this set; removing entries is a manual edit.
func SaveSnooze(path string, set dedup.TitleSet) error {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out, err := marshalYAML(keys)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing snooze list: %w", err)
	}
	return nil
}
