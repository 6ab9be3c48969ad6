package sheetcalc

import (
	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/sheetcalc/statik"
)

//go:generate statik -src=demo

// DemoFile is the embedded demo script.
const DemoFile = "/demo.sheet"

// LoadDemo runs the embedded demo script in env.
func LoadDemo(env *Env) error {
	statikFS, err := fs.New()
	if err != nil {
		return err
	}
	f, err := statikFS.Open(DemoFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return env.Eval(f)
}
