package game

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/wheel-of-luck/internal/options"
)

var optionFilters = zenity.FileFilters{{
	Name:     "Option lists",
	Patterns: options.Extensions,
}}

// dialog errors: a cancelled dialog is not a failure
func canceled(err error) bool {
	return errors.Is(err, zenity.ErrCanceled)
}

func (g *game) addOption() error {
	label, err := zenity.Entry("Enter new option:", zenity.Title("Add Option"))
	if err != nil {
		if canceled(err) {
			return nil
		}
		return err
	}
	if err := g.Options.Add(label); err != nil {
		return err
	}
	g.message = fmt.Sprintf("Added %q", label)
	return nil
}

func (g *game) removeOption() error {
	if g.Options.Len() == 0 {
		return zenity.Info("No options to remove.", zenity.Title("Remove Option"))
	}
	label, err := zenity.List("Choose an option to remove:", g.Options.Labels(), zenity.Title("Remove Option"))
	if err != nil {
		if canceled(err) {
			return nil
		}
		return err
	}
	if label == "" {
		return nil
	}
	if err := g.Options.Remove(label); err != nil {
		return err
	}
	g.message = fmt.Sprintf("Removed %q", label)
	return nil
}

func (g *game) saveOptions() error {
	path := g.Config.Options.File
	if err := g.Options.Save(path); err != nil {
		return err
	}
	g.Log.Info("options saved", zap.String("file", path), zap.Int("count", g.Options.Len()))
	return zenity.Info("Options saved to "+path, zenity.Title("Save"))
}

func (g *game) loadOptions() error {
	return g.replaceFrom(g.Config.Options.File)
}

func (g *game) importOptions() error {
	path, err := zenity.SelectFile(
		zenity.Title("Import Options"),
		optionFilters,
	)
	if err != nil {
		if canceled(err) {
			return nil
		}
		return err
	}
	return g.replaceFrom(path)
}

func (g *game) exportOptions() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export Options"),
		zenity.Filename("options.txt"),
		zenity.ConfirmOverwrite(),
		optionFilters,
	)
	if err != nil {
		if canceled(err) {
			return nil
		}
		return err
	}
	if err := g.Options.Save(path); err != nil {
		return err
	}
	g.message = "Exported to " + path
	g.Log.Info("options exported", zap.String("file", path), zap.Int("count", g.Options.Len()))
	return nil
}

func (g *game) replaceFrom(path string) error {
	l, err := options.Load(path)
	if err != nil {
		return err
	}
	g.Options.Replace(l.Labels())
	g.message = fmt.Sprintf("Loaded %d options from %s", g.Options.Len(), path)
	g.Log.Info("options loaded", zap.String("file", path), zap.Int("count", g.Options.Len()))
	return nil
}
