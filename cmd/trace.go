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
	"github.com/spf13/cobra"
)

// TraceCmd represents the trace command
var TraceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Fit the CST coefficients of a deflected curve through target points",
	Long: `
Fits a CST curve whose end is displaced to a tip and which passes through the target points,

gomorph trace -I trace.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			fileName string
			data     []byte
		)
		if fileName, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		if len(fileName) == 0 {
			fmt.Printf("Example File:%s\n", exampleTraceFile)
			return fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		}
		if data, err = ioutil.ReadFile(fileName); err != nil {
			return
		}
		tp := &InputParameters.TracingParameters{}
		if err = tp.Parse(data); err != nil {
			return
		}
		return RunTrace(tp)
	},
}

const exampleTraceFile = `
########################################
Title: "Beam"
TipX: 1.
TipY: 0.5
PointsX: [0.25]
PointsY: [0.7]
N1: 1.
N2: 1.
########################################
`

func init() {
	rootCmd.AddCommand(TraceCmd)
	TraceCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for the tracing case")
}

func RunTrace(tp *InputParameters.TracingParameters) (err error) {
	var (
		A []float64
	)
	tp.Print()
	if A, err = tp.Trace(); err != nil {
		return
	}
	fmt.Printf("%v\t= Coefficients\n", A)
	return
}
