// Package rolltable loads named dice presets from an HCL table file, so
// frequently used rolls can be invoked as "@name" instead of spelling out
// the notation every time.
package rolltable

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/diceroll/dice"
)

// Prefix marks an argument as a preset reference.
const Prefix = "@"

// Table holds every preset defined in a table file.
type Table struct {
	Rolls []Roll `hcl:"roll,block"`
}

// Roll is one named preset: the dice rolled together under that name.
type Roll struct {
	Name string   `hcl:"name,label"`
	Dice []string `hcl:"dice"`
	Note string   `hcl:"note,optional"`
}

// Load reads a preset table from an HCL file. A missing file is not an
// error; it simply defines no presets.
func Load(filename string) (*Table, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return &Table{}, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var table Table
	diags = gohcl.DecodeBody(file.Body, nil, &table)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	return &table, nil
}

// Validate checks that every preset has a usable name and parseable dice.
func (t *Table) Validate() error {
	seen := make(map[string]bool, len(t.Rolls))
	for _, roll := range t.Rolls {
		if roll.Name == "" {
			return fmt.Errorf("preset with empty name")
		}
		if seen[roll.Name] {
			return fmt.Errorf("preset %s: defined twice", roll.Name)
		}
		seen[roll.Name] = true

		if len(roll.Dice) == 0 {
			return fmt.Errorf("preset %s: no dice listed", roll.Name)
		}
		for _, notation := range roll.Dice {
			if _, err := dice.Parse[uint64](notation); err != nil {
				return fmt.Errorf("preset %s: %v", roll.Name, err)
			}
		}
	}
	return nil
}

// Lookup returns the preset with the given name.
func (t *Table) Lookup(name string) (Roll, bool) {
	for _, roll := range t.Rolls {
		if roll.Name == name {
			return roll, true
		}
	}
	return Roll{}, false
}

// Names returns the names of every preset in definition order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Rolls))
	for i, roll := range t.Rolls {
		names[i] = roll.Name
	}
	return names
}

// Expand replaces each "@name" argument with the preset's notation strings,
// in place of the reference and in preset order. Arguments without the
// prefix pass through untouched.
func (t *Table) Expand(args []string) ([]string, error) {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		if !strings.HasPrefix(arg, Prefix) {
			expanded = append(expanded, arg)
			continue
		}
		name := strings.TrimPrefix(arg, Prefix)
		roll, ok := t.Lookup(name)
		if !ok {
			if len(t.Rolls) == 0 {
				return nil, fmt.Errorf("unknown roll preset %q: no table loaded", name)
			}
			return nil, fmt.Errorf("unknown roll preset %q: have %s", name, strings.Join(t.Names(), ", "))
		}
		expanded = append(expanded, roll.Dice...)
	}
	return expanded, nil
}
