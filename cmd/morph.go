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
	"fmt"
	"io/ioutil"

	"github.com/notargets/gomorph/InputParameters"
	"github.com/notargets/gomorph/morphing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type ModelMorph struct {
	ICFile  string
	Strains bool
	Verbose bool
	Points  int // Contour points per surface, 0 for none
}

// MorphCmd represents the morph command
var MorphCmd = &cobra.Command{
	Use:   "morph",
	Short: "Solve the child airfoil of a single morphing case",
	Long: `
Solves the dependent coefficients of the child airfoil described by a YAML case file,

gomorph morph -I case.yaml --strains`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			mp *InputParameters.MorphParameters
		)
		mm := &ModelMorph{}
		if mm.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		mm.Strains, _ = cmd.Flags().GetBool("strains")
		mm.Points, _ = cmd.Flags().GetInt("points")
		mm.Verbose = viper.GetBool("verbose")
		if mp, err = readMorphInput(mm.ICFile); err != nil {
			return
		}
		mm.Strains = mm.Strains || mp.Strains
		return RunMorph(mm, mp)
	},
}

const exampleMorphFile = `
########################################
Title: "Avian wing"
Direction: backwards # Can be "forwards"
ParentUpper: [0.2399, 0.3447, 0.1813, 0.3537, 0.2441, 0.2572]
ParentLower: [0.1889, -0.2469, 0.0776, -0.5478, -0.0047, -0.2399]
ParentChord: 1.
TrailingEdgeGap: 0.
SparStations: [0.2, 0.3, 0.5, 0.7, 0.9]
ChildUpper: [0.25, 0.25, 0.25, 0.25, 0.25]
########################################
`

func readMorphInput(fileName string) (mp *InputParameters.MorphParameters, err error) {
	var (
		data []byte
	)
	if len(fileName) == 0 {
		fmt.Printf("Example File:%s\n", exampleMorphFile)
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		return
	}
	if data, err = ioutil.ReadFile(fileName); err != nil {
		return
	}
	mp = &InputParameters.MorphParameters{}
	if err = mp.Parse(data); err != nil {
		return
	}
	return
}

func init() {
	rootCmd.AddCommand(MorphCmd)
	MorphCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for the morphing case")
	MorphCmd.Flags().BoolP("strains", "s", false, "report the lower surface and wire strains")
	MorphCmd.Flags().IntP("points", "n", 0, "print the child contour with this many points per surface")
}

func RunMorph(mm *ModelMorph, mp *InputParameters.MorphParameters) (err error) {
	var (
		cases []morphing.Case
		r     *morphing.Result
	)
	mp.Print()
	if cases, err = mp.Cases(); err != nil {
		return
	}
	c := cases[0]
	c.Spars = mp.SparStations // A sweep is run by the sweep command
	s := mp.Solver()
	if mm.Verbose {
		s.Trace = func(iteration int, leadingUpper, chord float64) {
			fmt.Printf("%4d\tAu0 = %12.9f\tchord = %12.9f\n", iteration, leadingUpper, chord)
		}
	}
	if r, err = s.Solve(c.Direction, c.FreeUpper, c.Spars, c.Parent); err != nil {
		return
	}
	printResult(r, mp.Inverted)
	if mm.Strains {
		if err = printStrains(r, c.Parent); err != nil {
			return
		}
	}
	if mm.Points > 0 {
		child := r.Child
		if mp.Inverted {
			child = child.Mirrored()
		}
		X, Y := child.Coordinates(mm.Points)
		for i := range X {
			fmt.Printf("%12.8f %12.8f\n", X[i], Y[i])
		}
	}
	return
}

func printResult(r *morphing.Result, inverted bool) {
	child := r.Child
	if inverted {
		child = child.Mirrored()
	}
	fmt.Printf("[%s]\t\t= Direction\n", r.Direction)
	fmt.Printf("%12.9f\t\t= Child Chord\n", child.Chord)
	fmt.Printf("%v\t= Child Upper\n", child.Upper.All())
	fmt.Printf("%v\t= Child Lower\n", child.Lower.All())
	fmt.Printf("%v\t= Spar Thicknesses\n", r.SparThicknesses)
	fmt.Printf("[%d]\t\t\t= Iterations\n", r.Iterations)
	fmt.Printf("%10.3e\t\t= Condition Number\n", r.Condition)
}

func printStrains(r *morphing.Result, parent morphing.Configuration) (err error) {
	var (
		sr, wr *morphing.StrainReport
	)
	if sr, err = r.Strains(parent); err != nil {
		return
	}
	if wr, err = r.WireStrains(parent); err != nil {
		return
	}
	fmt.Printf("Segment\t  Initial\t  Final\t\t  Strain\t  Wire Strain\n")
	for i := range sr.Segment {
		fmt.Printf("%d\t%10.6f\t%10.6f\t%10.6f\t%10.6f\n",
			i, sr.Initial[i], sr.Final[i], sr.Segment[i], wr.Segment[i])
	}
	fmt.Printf("%10.6f\t\t= Average Strain\n", sr.Average)
	fmt.Printf("%10.6f\t\t= Average Wire Strain\n", wr.Average)
	return
}
