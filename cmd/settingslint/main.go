package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/doomerang-settings/assets"
	cfg "github.com/automoto/doomerang-settings/config"
	"github.com/automoto/doomerang-settings/settings"
	"github.com/automoto/doomerang-settings/systems"
	"github.com/yohamta/donburi"
)

func main() {
	dir := flag.String("dir", "", "Directory the tables are read from (empty = embedded assets)")
	strict := flag.Bool("strict", false, "Panic on the first broken setting while building the menu")
	flag.Parse()

	paths := cfg.SettingsMenu.Tables
	if flag.NArg() > 0 {
		paths = flag.Args()
	}

	var fsys fs.FS = assets.SettingsFS()
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}
	src := settings.YAMLSource{FS: fsys, Paths: paths}

	tables, err := src.Tables()
	if err != nil {
		log.Fatalf("Failed to read settings tables: %v", err)
	}

	if errs := settings.Validate(tables, systems.NewSettingsClasses()); errs != nil {
		log.Printf("%v", errs)
		os.Exit(1)
	}

	// Build the menu against a world with every owner present.
	w := donburi.NewWorld()
	systems.SpawnSettingsOwners(w, nil)
	systems.SpawnGameplaySettings(w, nil)
	screen := systems.NewSettingsMenu(w, src, nil, settings.WithStrict(*strict))
	screen.Menu.Construct()

	if deferred := screen.Menu.Deferred(); !deferred.IsEmpty() {
		log.Printf("Settings not bound: %s", deferred)
		os.Exit(1)
	}

	log.Printf("%d tables ok: %d settings in %d columns",
		len(tables), screen.Menu.Len(), screen.Menu.Columns())
}
