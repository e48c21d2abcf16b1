package cmd

import (
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pat-lang/pat/frontend/ast"
	"github.com/pat-lang/pat/frontend/paterr"
	"github.com/pat-lang/pat/frontend/types"
	"github.com/pat-lang/pat/internal/log"
	"github.com/spf13/cobra"
)

var CheckCmd = &cobra.Command{
	Use:          "check file.yaml...",
	Short:        "Check the mailbox typing of protocol files",
	RunE:         runCheck,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var (
	combineAsJoin *bool
	logLevel      *int
)

func init() {
	combineAsJoin = CheckCmd.Flags().Bool("combine-as-join", false, "treat parallel composition like sequential composition")
	logLevel = CheckCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	failed := false
	for _, file := range args {
		diagnostics, err := checkFile(file)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		for _, diag := range diagnostics.Errors() {
			fmt.Fprintf(os.Stderr, "%s:%v: %s\n", file, diag.Pos(), paterr.FormatWithCode(diag))
		}
		if diagnostics.HasError() {
			failed = true
		} else {
			fmt.Printf("%s: ok\n", file)
		}
	}
	if failed {
		return errors.New("checks failed")
	}
	return nil
}

// checkFile runs every check in a protocol file, accumulating diagnostics
// across checks so one failure does not hide the rest. Malformed files are
// reported through the error return instead.
func checkFile(file string) (*paterr.Errors, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	table, err := doc.buildTable()
	if err != nil {
		return nil, err
	}

	ctx := types.NewTypeCtx(table)
	if *combineAsJoin {
		ctx = ctx.WithCombinePolicy(types.CombineAsJoin)
	}

	var diagnostics *paterr.Errors
	for i, check := range doc.Checks {
		// positions index into the check list: there is no source text
		pos := ast.Range{PosStart: token.Pos(i + 1), PosEnd: token.Pos(i + 1)}
		constraints, err := runOne(ctx, check, pos)
		if err != nil {
			var diag paterr.PatError
			if !errors.As(err, &diag) {
				return nil, err
			}
			diagnostics = diagnostics.With(diag)
			continue
		}
		name := check.Name
		if name == "" {
			name = fmt.Sprint("check ", i+1)
		}
		fmt.Printf("  %s: %d constraints %v\n", name, constraints.Size(), constraints)
	}
	return diagnostics, nil
}

func runOne(ctx *types.TypeCtx, check checkDecl, pos ast.Range) (types.ConstraintSet, error) {
	switch {
	case check.Subtype != nil:
		lhs, err := check.Subtype.Lhs.convert()
		if err != nil {
			return types.ConstraintSet{}, err
		}
		rhs, err := check.Subtype.Rhs.convert()
		if err != nil {
			return types.ConstraintSet{}, err
		}
		return ctx.Subtype(lhs, rhs, pos)

	case check.Join != nil:
		return runEnvOp(ctx.Join, *check.Join, pos)

	case check.Combine != nil:
		return runEnvOp(ctx.Combine, *check.Combine, pos)

	case check.Intersect != nil:
		return runEnvOp(ctx.Intersect, *check.Intersect, pos)

	case check.Unrestricted != nil:
		env, err := convertEnv(check.Unrestricted)
		if err != nil {
			return types.ConstraintSet{}, err
		}
		return ctx.MakeUnrestricted(env, pos)

	default:
		return types.ConstraintSet{}, fmt.Errorf("empty check; set one of subtype, join, combine, intersect, unrestricted")
	}
}

func runEnvOp(
	op func(types.TypeEnv, types.TypeEnv, ast.Range) (types.TypeEnv, types.ConstraintSet, error),
	decl envOpDecl,
	pos ast.Range,
) (types.ConstraintSet, error) {
	left, err := convertEnv(decl.Left)
	if err != nil {
		return types.ConstraintSet{}, err
	}
	right, err := convertEnv(decl.Right)
	if err != nil {
		return types.ConstraintSet{}, err
	}
	_, constraints, err := op(left, right, pos)
	return constraints, err
}
