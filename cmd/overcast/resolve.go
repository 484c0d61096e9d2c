package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"overcast/internal/compat"
	"overcast/internal/rules"
	"overcast/internal/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] rules.toml",
	Short: "Resolve a call signature against candidate overloads",
	Long:  `Resolve loads a rules manifest and reports which candidate signature best matches the call`,
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().String("call", "", "comma-separated call argument types")
	resolveCmd.Flags().String("candidates", "", "semicolon-separated candidate signatures, each comma-separated")
	resolveCmd.Flags().Bool("allow-unsafe", false, "permit precision-losing conversions")
}

func runResolve(cmd *cobra.Command, args []string) error {
	callFlag, err := cmd.Flags().GetString("call")
	if err != nil {
		return fmt.Errorf("failed to get call flag: %w", err)
	}
	candFlag, err := cmd.Flags().GetString("candidates")
	if err != nil {
		return fmt.Errorf("failed to get candidates flag: %w", err)
	}
	allowUnsafe, err := cmd.Flags().GetBool("allow-unsafe")
	if err != nil {
		return fmt.Errorf("failed to get allow-unsafe flag: %w", err)
	}

	manifest, err := rules.Load(args[0])
	if err != nil {
		return err
	}
	reg := types.NewRegistry()
	mgr := compat.NewManager()
	if err := manifest.Apply(reg, mgr); err != nil {
		return err
	}

	sig, err := parseSignature(reg, callFlag)
	if err != nil {
		return fmt.Errorf("bad --call: %w", err)
	}
	var flat []types.TypeID
	count := 0
	for _, raw := range strings.Split(candFlag, ";") {
		cand, err := parseSignature(reg, raw)
		if err != nil {
			return fmt.Errorf("bad --candidates: %w", err)
		}
		if len(cand) != len(sig) {
			return fmt.Errorf("candidate %q arity differs from call", strings.TrimSpace(raw))
		}
		flat = append(flat, cand...)
		count++
	}

	useColor := shouldColor(cmd)
	tied := mgr.ResolveOverload(sig, flat, count, allowUnsafe)
	switch len(tied) {
	case 0:
		printOutcome(useColor, color.FgRed, "no matching overload")
	case 1:
		printOutcome(useColor, color.FgGreen, fmt.Sprintf("selected candidate %d", tied[0]))
	default:
		printOutcome(useColor, color.FgYellow, fmt.Sprintf("ambiguous call: candidates %v tie for best", tied))
	}
	return nil
}

// parseSignature interns each comma-separated type name. Names never seen in
// the manifest still intern; they simply have no registered relations.
func parseSignature(reg *types.Registry, raw string) ([]types.TypeID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("empty signature")
	}
	var sig []types.TypeID
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("empty type name")
		}
		sig = append(sig, reg.Intern(name))
	}
	return sig, nil
}

func shouldColor(cmd *cobra.Command) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
}

func printOutcome(useColor bool, attr color.Attribute, msg string) {
	if useColor {
		color.New(attr).Println(msg)
		return
	}
	fmt.Println(msg)
}
