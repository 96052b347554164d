package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlid/demos"
	"github.com/katalvlaran/lvlid/inference"
	"github.com/katalvlaran/lvlid/model"
	"github.com/katalvlaran/lvlid/render"
	"github.com/katalvlaran/lvlid/table"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	meuColor   = color.New(color.FgGreen, color.Bold)
)

func newListCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in diagrams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, d := range demos.All() {
				fmt.Fprintf(out, "%s  %s\n", titleColor.Sprintf("%-16s", d.Name), d.Description)
			}
			return nil
		},
	}
}

func newSolveCmd(a *app) *cobra.Command {
	var evidence []string
	cmd := &cobra.Command{
		Use:   "solve [diagram]",
		Short: "Compute the MEU and the optimal policies of a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, e, err := a.engine(args[0])
			if err != nil {
				return err
			}
			obs, err := parseEvidence(id, evidence)
			if err != nil {
				return err
			}
			if err = e.InsertEvidence(obs); err != nil {
				return describe(err)
			}
			if err = e.MakeInference(cmd.Context()); err != nil {
				return describe(err)
			}
			meu, err := e.MEU()
			if err != nil {
				return describe(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleColor.Sprint(id.Name()))
			fmt.Fprintf(out, "maximum expected utility %s\n", meuColor.Sprint(inference.FormatUtility(meu)))
			return describe(e.DisplayResult(out))
		},
	}
	cmd.Flags().StringArrayVar(&evidence, "evidence", nil, "observation Variable=label (repeatable)")

	return cmd
}

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [diagram]",
		Short: "Print the strong junction tree of a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, e, err := a.engine(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), titleColor.Sprint(id.Name()))
			return e.DisplayStrongJunctionTree(cmd.OutOrStdout())
		},
	}
}

func newDotCmd(a *app) *cobra.Command {
	var out, format string
	cmd := &cobra.Command{
		Use:   "dot [diagram]",
		Short: "Draw the strong junction tree of a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, e, err := a.engine(args[0])
			if err != nil {
				return err
			}
			f, err := a.cfg.RenderFormat()
			if err != nil {
				return err
			}
			if format != "" {
				if f, err = render.ParseFormat(format); err != nil {
					return err
				}
			}
			g, err := render.FromEngine(e, id, render.WithRankDir(a.cfg.Render.RankDir))
			if err != nil {
				return err
			}
			if out == "" {
				if f != render.FormatDOT {
					return fmt.Errorf("--out is required for %s output", f)
				}
				return render.Render(g, f, cmd.OutOrStdout())
			}
			if err = render.RenderFile(g, f, out); err != nil {
				return err
			}
			a.logger.Info("rendered", "diagram", id.Name(), "format", string(f), "path", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (stdout for dot when empty)")
	cmd.Flags().StringVar(&format, "format", "", "output format: dot, svg or png (default from config)")

	return cmd
}

// engine builds the named demo and compiles it with the configured options.
func (a *app) engine(name string) (*model.InfluenceDiagram, *inference.Engine, error) {
	d, err := demos.Lookup(name)
	if err != nil {
		return nil, nil, err
	}
	id, err := d.Build()
	if err != nil {
		return nil, nil, err
	}
	opts, err := a.cfg.EngineOptions(a.logger)
	if err != nil {
		return nil, nil, err
	}
	e, err := inference.NewEngine(id, opts...)
	if err != nil {
		return nil, nil, describe(err)
	}

	return id, e, nil
}

// parseEvidence turns "Variable=label" pairs into one-hot evidence tables.
func parseEvidence(id *model.InfluenceDiagram, pairs []string) ([]*table.Table, error) {
	out := make([]*table.Table, 0, len(pairs))
	for _, p := range pairs {
		name, label, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("evidence %q: want Variable=label", p)
		}
		n, err := id.NodeByName(name)
		if err != nil {
			return nil, err
		}
		v, err := id.Variable(n)
		if err != nil {
			return nil, err
		}
		k, err := v.Index(label)
		if err != nil {
			return nil, err
		}
		ev, err := table.New(v)
		if err != nil {
			return nil, err
		}
		values := make([]float64, v.DomainSize())
		values[k] = 1
		if err = ev.SetValues(values...); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}

	return out, nil
}

// describe prefixes engine errors with their kind.
func describe(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s error: %w", inference.KindOf(err), err)
}
