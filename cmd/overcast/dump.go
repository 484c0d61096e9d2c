package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"overcast/internal/compat"
	"overcast/internal/rules"
	"overcast/internal/types"
)

var dumpCmd = &cobra.Command{
	Use:   "dump rules.toml",
	Short: "Dump the compatibility table built from a rules manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	manifest, err := rules.Load(args[0])
	if err != nil {
		return err
	}
	reg := types.NewRegistry()
	mgr := compat.NewManager()
	if err := manifest.Apply(reg, mgr); err != nil {
		return err
	}

	type fact struct {
		from types.TypeID
		to   types.TypeID
		code compat.Code
	}
	var facts []fact
	mgr.Table().Range(func(from, to types.TypeID, code compat.Code) {
		facts = append(facts, fact{from: from, to: to, code: code})
	})
	// Bucket order is not stable across registrations; sort for output.
	sort.Slice(facts, func(i, j int) bool {
		if facts[i].from != facts[j].from {
			return facts[i].from.Less(facts[j].from)
		}
		return facts[i].to.Less(facts[j].to)
	})
	for _, f := range facts {
		fromName, _ := reg.Name(f.from)
		toName, _ := reg.Name(f.to)
		fmt.Fprintf(os.Stdout, "%s -> %s: %s\n", fromName, toName, f.code)
	}
	return nil
}
