package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pinmark"
)

// Run executes the prefs clipboard-watch command. Without a value it prints
// the current setting.
func (c *ClipboardWatchCmd) Run(deps *Dependencies) error {
	if c.Value == "" {
		on, err := deps.Preferences.BoolPreference(deps.Ctx, pinmark.PrefClipboardWatch, true)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "clipboard-watch: %s\n", onOff(on))
		return nil
	}

	on, err := parseOnOff(c.Value)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
		return err
	}

	if err := deps.Preferences.SetBoolPreference(deps.Ctx, pinmark.PrefClipboardWatch, on); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "clipboard-watch: %s\n", onOff(on))
	return nil
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, pinmark.Errorf(pinmark.EINVALID, "invalid value %q: use on or off", s)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
