/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/notargets/gomorph/InputParameters"
	"github.com/notargets/gomorph/morphing"
	"github.com/spf13/cobra"
)

// SweepCmd represents the sweep command
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Solve every spar station set of a case file in parallel",
	Long: `
Solves one child airfoil per entry of the Sweep list of a YAML case file,

gomorph sweep -I case.yaml -p 4`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			fileName string
			mp       *InputParameters.MorphParameters
		)
		if fileName, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		pd, _ := cmd.Flags().GetInt("parallelDegree")
		if mp, err = readMorphInput(fileName); err != nil {
			return
		}
		return RunSweep(cmd.Context(), mp, pd)
	},
}

func init() {
	rootCmd.AddCommand(SweepCmd)
	SweepCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for the morphing cases")
	SweepCmd.Flags().IntP("parallelDegree", "p", runtime.NumCPU(), "number of concurrent solves")
}

func RunSweep(ctx context.Context, mp *InputParameters.MorphParameters, parallelDegree int) (err error) {
	var (
		cases  []morphing.Case
		failed int
	)
	if ctx == nil {
		ctx = context.Background()
	}
	mp.Print()
	if cases, err = mp.Cases(); err != nil {
		return
	}
	out := mp.Solver().Sweep(ctx, cases, parallelDegree)
	fmt.Printf("Case\tChord\t\tIterations\tSpars\n")
	for k, o := range out {
		if o.Err != nil {
			failed++
			fmt.Printf("%d\terror: %s\n", k, o.Err.Error())
			continue
		}
		fmt.Printf("%d\t%10.6f\t%d\t\t%v\n", k, o.Result.Child.Chord, o.Result.Iterations, cases[k].Spars)
	}
	if failed == len(out) {
		err = fmt.Errorf("all %d sweep cases failed", failed)
	}
	return
}
