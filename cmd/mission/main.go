package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/supakorn-kn/go-catalog/kinematics"
)

func main() {

	clamp := flag.Bool("clamp", false, "report zero fuel instead of failing when the burn outlasts the fuel")
	flag.Parse()

	policy := kinematics.RejectDepletion
	if *clamp {
		policy = kinematics.ClampDepletion
	}

	if err := run(os.Stdout, kinematics.DefaultMission(), policy); err != nil {
		slog.Error("Compute mission report failed", "policy", policy, "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, mission kinematics.Mission, policy kinematics.DepletionPolicy) error {

	report, err := mission.Report(policy)
	if err != nil {
		return err
	}

	for _, line := range report.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
